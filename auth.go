package main

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when a login username isn't found, so the
// response time does not reveal which usernames exist.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy"), bcrypt.DefaultCost)

// login verifies username/password and returns the user's auth token.
// POST /api/login (public, no auth required).
func (h *Handler) login(c *gin.Context) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Username == "" || body.Password == "" {
		apiError(c, http.StatusBadRequest, "username and password are required")
		return
	}

	u, lookupErr := queryOne[user](h.db, c,
		"SELECT id, username, email, password, auth_token, created_at FROM users WHERE username = @username",
		pgx.NamedArgs{"username": body.Username})
	if lookupErr != nil && !errors.Is(lookupErr, pgx.ErrNoRows) {
		log.Printf("[login] user lookup failed: %v", lookupErr)
		apiError(c, http.StatusInternalServerError, "login failed")
		return
	}

	hashToCheck := dummyHash
	if lookupErr == nil {
		hashToCheck = []byte(u.Password)
	}
	compareErr := bcrypt.CompareHashAndPassword(hashToCheck, []byte(body.Password))

	if lookupErr != nil || compareErr != nil {
		apiError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": u.AuthToken, "user_id": u.ID})
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

// authMiddleware validates the Bearer token and sets user_id on the context.
func (h *Handler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			apiError(c, http.StatusUnauthorized, "missing or invalid authorization header")
			c.Abort()
			return
		}

		var userID int
		err := h.db.QueryRow(c, "SELECT id FROM users WHERE auth_token = $1", token).Scan(&userID)
		if err != nil {
			if !errors.Is(err, pgx.ErrNoRows) {
				log.Printf("[authMiddleware] token lookup failed: %v", err)
			}
			apiError(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
