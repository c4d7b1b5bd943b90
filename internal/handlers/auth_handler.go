package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
)

const adminTokenTTL = 12 * time.Hour

// AuthHandler is the gate into admin mode: one shared password, no users.
type AuthHandler struct {
	passwordHash []byte
	jwtSecret    []byte
	now          func() time.Time
}

// NewAuthHandler hashes the configured admin password once at startup.
// A value that already is a bcrypt hash is used as is.
func NewAuthHandler(adminPassword, jwtSecret string) (*AuthHandler, error) {
	hash := []byte(adminPassword)
	if _, err := bcrypt.Cost(hash); err != nil {
		hash, err = bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
	}

	return &AuthHandler{
		passwordHash: hash,
		jwtSecret:    []byte(jwtSecret),
		now:          time.Now,
	}, nil
}

// --------- Requests ---------

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	if err := bcrypt.CompareHashAndPassword(h.passwordHash, []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Password errata.")
		return
	}

	token, expires, err := h.generateToken()
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Errore interno.")
		return
	}

	httpresp.OK(c, gin.H{
		"token":      token,
		"expires_at": expires,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken() (string, time.Time, error) {
	now := h.now()
	exp := now.Add(adminTokenTTL)

	claims := jwt.MapClaims{
		"sub":  "admin",
		"role": middleware.RoleAdmin,
		"exp":  exp.Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(h.jwtSecret)
	return signed, exp, err
}
