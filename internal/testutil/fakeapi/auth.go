package fakeapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thenoetrevino/uptask/internal/models"
)

func (s *Server) createAccount(c *gin.Context) {
	var form models.RegistrationForm
	if err := c.ShouldBindJSON(&form); err != nil || form.Email == "" || form.Password == "" {
		fail(c, http.StatusBadRequest, "Invalid registration data")
		return
	}
	if form.Password != form.PasswordConfirmation {
		fail(c, http.StatusBadRequest, "Passwords do not match")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.accountByEmail(form.Email) != nil {
		fail(c, http.StatusConflict, "User already registered")
		return
	}
	a := s.addAccount(form.Name, form.Email, form.Password)
	s.issueCode(a.ID)
	c.JSON(http.StatusOK, "Account created, check your email to confirm it")
}

func (s *Server) confirmAccount(c *gin.Context) {
	var form models.ConfirmToken
	_ = c.ShouldBindJSON(&form)

	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.codes[form.Token]
	if !ok {
		fail(c, http.StatusNotFound, "Invalid token")
		return
	}
	s.accounts[id].confirmed = true
	delete(s.codes, form.Token)
	c.JSON(http.StatusOK, "Account confirmed")
}

func (s *Server) requestCode(c *gin.Context) {
	var form models.EmailForm
	_ = c.ShouldBindJSON(&form)

	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.accountByEmail(form.Email)
	if a == nil {
		fail(c, http.StatusNotFound, "User not registered")
		return
	}
	if a.confirmed {
		fail(c, http.StatusForbidden, "User is already confirmed")
		return
	}
	s.issueCode(a.ID)
	c.JSON(http.StatusOK, "A new code was sent to your email")
}

// login answers with the bare token as text/plain, like the real backend
func (s *Server) login(c *gin.Context) {
	var form models.LoginForm
	_ = c.ShouldBindJSON(&form)

	s.mu.Lock()
	a := s.accountByEmail(form.Email)
	var confirmed bool
	var id, password string
	if a != nil {
		confirmed, id, password = a.confirmed, a.ID, a.password
	}
	s.mu.Unlock()

	switch {
	case a == nil:
		fail(c, http.StatusNotFound, "User not found")
	case !confirmed:
		fail(c, http.StatusForbidden, "Account not confirmed, we sent a new code to your email")
	case password != form.Password:
		fail(c, http.StatusUnauthorized, "Incorrect password")
	default:
		c.String(http.StatusOK, s.TokenFor(id))
	}
}

func (s *Server) forgotPassword(c *gin.Context) {
	var form models.EmailForm
	_ = c.ShouldBindJSON(&form)

	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.accountByEmail(form.Email)
	if a == nil {
		fail(c, http.StatusNotFound, "User not registered")
		return
	}
	s.issueCode(a.ID)
	c.JSON(http.StatusOK, "Check your email for instructions")
}

func (s *Server) validateToken(c *gin.Context) {
	var form models.ConfirmToken
	_ = c.ShouldBindJSON(&form)

	s.mu.Lock()
	_, ok := s.codes[form.Token]
	s.mu.Unlock()
	if !ok {
		fail(c, http.StatusNotFound, "Invalid token")
		return
	}
	c.JSON(http.StatusOK, "Valid token, set your new password")
}

func (s *Server) updatePasswordWithToken(c *gin.Context) {
	var form models.NewPasswordForm
	_ = c.ShouldBindJSON(&form)
	if form.Password == "" || form.Password != form.PasswordConfirmation {
		fail(c, http.StatusBadRequest, "Passwords do not match")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	token := c.Param("token")
	id, ok := s.codes[token]
	if !ok {
		fail(c, http.StatusNotFound, "Invalid token")
		return
	}
	s.accounts[id].password = form.Password
	delete(s.codes, token)
	c.JSON(http.StatusOK, "Password updated")
}

func (s *Server) currentUser(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}

func (s *Server) checkPassword(c *gin.Context) {
	var form models.CheckPasswordForm
	_ = c.ShouldBindJSON(&form)

	s.mu.Lock()
	a := s.accounts[currentUser(c).ID]
	ok := a.password == form.Password
	s.mu.Unlock()
	if !ok {
		fail(c, http.StatusBadRequest, "Incorrect password")
		return
	}
	c.JSON(http.StatusOK, "Correct password")
}

// updateProfile reports errors under "message", as the real profile routes do
func (s *Server) updateProfile(c *gin.Context) {
	var form models.ProfileForm
	_ = c.ShouldBindJSON(&form)

	s.mu.Lock()
	defer s.mu.Unlock()
	user := currentUser(c)
	if other := s.accountByEmail(form.Email); other != nil && other.ID != user.ID {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"message": "Email already in use"})
		return
	}
	a := s.accounts[user.ID]
	a.Name = form.Name
	a.Email = form.Email
	c.JSON(http.StatusOK, "Profile updated")
}

func (s *Server) changePassword(c *gin.Context) {
	var form models.UpdatePasswordForm
	_ = c.ShouldBindJSON(&form)

	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.accounts[currentUser(c).ID]
	if a.password != form.CurrentPassword {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Current password is incorrect"})
		return
	}
	if form.Password == "" || form.Password != form.PasswordConfirmation {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Passwords do not match"})
		return
	}
	a.password = form.Password
	c.JSON(http.StatusOK, "Password changed")
}
