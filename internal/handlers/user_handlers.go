package handlers

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bookhaven/bookhaven-golang/internal/auth"
	"github.com/bookhaven/bookhaven-golang/internal/email"
	"github.com/bookhaven/bookhaven-golang/internal/models"
)

// RegisterUserInput is the signup payload. It is separate from models.User
// so a client can never set its own id, role or status.
type RegisterUserInput struct {
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	PhoneNumber string `json:"phoneNumber" binding:"required,min=7"`
}

// Register is the handler for POST /v1/register.
func (h *Handlers) Register(c *gin.Context) {
	var input RegisterUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.Store.Users().GetByEmail(c.Request.Context(), input.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
		return
	}

	var password models.Password
	if err := password.Set(input.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	code := generateVerificationCode()
	expiry := time.Now().Add(15 * time.Minute)
	now := time.Now()

	user := &models.User{
		Role:               models.RoleCustomer,
		Status:             models.UserStatusUnverified,
		Email:              input.Email,
		PasswordHash:       password.Hash,
		FullName:           input.FullName,
		PhoneNumber:        input.PhoneNumber,
		VerificationCode:   &code,
		VerificationExpiry: &expiry,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := h.Store.Users().Create(c.Request.Context(), user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	// Verification email is best-effort; the account exists either way.
	subject, body := email.BuildVerificationEmail(code)
	if err := h.Mailer.Send(user.Email, subject, body); err != nil {
		log.Printf("Warning: failed to send verification email to %s: %v", user.Email, err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created. Check your email for a verification code.",
		"user":    user,
	})
}

// VerifyEmailInput is the payload for POST /v1/auth/verify-email.
type VerifyEmailInput struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

// VerifyEmail activates an account when the submitted code matches.
func (h *Handlers) VerifyEmail(c *gin.Context) {
	var input VerifyEmailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Store.Users().GetByEmail(c.Request.Context(), input.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}
	if user.Status == models.UserStatusActive {
		c.JSON(http.StatusOK, gin.H{"message": "Account already verified"})
		return
	}

	if user.VerificationCode == nil || *user.VerificationCode != input.Code {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid verification code"})
		return
	}
	if user.VerificationExpiry == nil || time.Now().After(*user.VerificationExpiry) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Verification code has expired"})
		return
	}

	if err := h.Store.Users().MarkVerified(c.Request.Context(), user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account verified successfully"})
}

// ResendCodeInput is the payload for POST /v1/auth/resend-code.
type ResendCodeInput struct {
	Email string `json:"email" binding:"required,email"`
}

// ResendVerificationCode issues a fresh code for an unverified account.
func (h *Handlers) ResendVerificationCode(c *gin.Context) {
	var input ResendCodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Store.Users().GetByEmail(c.Request.Context(), input.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}
	if user.Status == models.UserStatusActive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Account is already verified"})
		return
	}

	code := generateVerificationCode()
	expiry := time.Now().Add(15 * time.Minute)
	if err := h.Store.Users().SetVerificationCode(c.Request.Context(), user.ID, code, expiry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update verification code"})
		return
	}

	subject, body := email.BuildVerificationEmail(code)
	if err := h.Mailer.Send(user.Email, subject, body); err != nil {
		log.Printf("Warning: failed to send verification email to %s: %v", user.Email, err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent"})
}

// LoginInput is the payload for POST /v1/login.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login checks credentials and returns a signed JWT.
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Store.Users().GetByEmail(c.Request.Context(), input.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	password := models.Password{Hash: user.PasswordHash}
	matches, err := password.Matches(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check password"})
		return
	}
	if !matches {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// GetMe is the handler for GET /v1/profile/me.
func (h *Handlers) GetMe(c *gin.Context) {
	userID_raw, _ := c.Get("userID")
	userID := userID_raw.(int64)

	user, err := h.Store.Users().GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func generateVerificationCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		// Extremely unlikely; fall back to a time-derived code.
		return fmt.Sprintf("%06d", time.Now().UnixNano()%1000000)
	}
	return fmt.Sprintf("%06d", n.Int64())
}
