package events

// Publisher is what the query cache needs to announce changes.
// A nil Publisher is valid wherever one is accepted.
type Publisher interface {
	Publish(event Event)
}

// Subscriber lets views follow cache changes
type Subscriber interface {
	// Subscribe returns a channel of events and a function that cancels the
	// subscription and closes the channel
	Subscribe(buffer int) (<-chan Event, func())
}

// Compile-time verification that *Bus implements both sides
var (
	_ Publisher  = (*Bus)(nil)
	_ Subscriber = (*Bus)(nil)
)
