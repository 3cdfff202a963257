package web

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	adminCookie = "admin_token"
	adminIssuer = "portfolio-admin"
)

var ErrInvalidSession = errors.New("invalid admin session")

// AdminAuth checks admin credentials and issues signed session tokens.
type AdminAuth struct {
	username string
	password string
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

func NewAdminAuth(username, password string, secret []byte, ttl time.Duration) *AdminAuth {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AdminAuth{username: username, password: password, secret: secret, ttl: ttl, now: time.Now}
}

func (a *AdminAuth) CheckCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK
}

// Issue returns a session token for username.
func (a *AdminAuth) Issue(username string) (string, error) {
	now := a.now()
	claims := jwt.RegisteredClaims{
		Issuer:    adminIssuer,
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("sign admin session: %w", err)
	}
	return token, nil
}

// Verify returns the subject of a valid session token.
func (a *AdminAuth) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	}, jwt.WithIssuer(adminIssuer), jwt.WithTimeFunc(a.now))
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	return claims.Subject, nil
}

// Middleware sends requests without a valid session to the login page.
func (a *AdminAuth) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		subject, err := a.Verify(token)
		if err != nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Set("admin", subject)
		c.Next()
	}
}

func (a *AdminAuth) TTL() time.Duration { return a.ttl }
