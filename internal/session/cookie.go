// Package session issues the private `user_id` cookie. Its value is the
// decimal user id sealed with XChaCha20-Poly1305 under a per-process key.
package session

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/chacha20poly1305"
)

const CookieName = "user_id"

var ErrInvalidCookie = errors.New("invalid session cookie")

type Sealer struct {
	aead cipher.AEAD
}

func NewSealer(key []byte) (*Sealer, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	return &Sealer{aead: aead}, nil
}

// Seal encrypts plaintext with a fresh nonce, binding it to the cookie name.
func (s *Sealer) Seal(plaintext string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(plaintext)+s.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	sealed := s.aead.Seal(nonce, nonce, []byte(plaintext), []byte(CookieName))
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (s *Sealer) Open(value string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil || len(raw) < s.aead.NonceSize() {
		return "", ErrInvalidCookie
	}
	nonce, ciphertext := raw[:s.aead.NonceSize()], raw[s.aead.NonceSize():]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, []byte(CookieName))
	if err != nil {
		return "", ErrInvalidCookie
	}
	return string(plaintext), nil
}

// Cookies reads and writes the session cookie on gin requests.
type Cookies struct {
	sealer *Sealer
	secure bool
}

func NewCookies(sealer *Sealer, secure bool) *Cookies {
	return &Cookies{sealer: sealer, secure: secure}
}

func (c *Cookies) sameSite() http.SameSite {
	if c.secure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

// Set issues a new session cookie for userID.
func (c *Cookies) Set(ctx *gin.Context, userID int64) error {
	value, err := c.sealer.Seal(strconv.FormatInt(userID, 10))
	if err != nil {
		return err
	}
	ctx.SetSameSite(c.sameSite())
	ctx.SetCookie(CookieName, value, 0, "/", "", c.secure, true)
	return nil
}

func (c *Cookies) Clear(ctx *gin.Context) {
	ctx.SetSameSite(c.sameSite())
	ctx.SetCookie(CookieName, "", -1, "/", "", c.secure, true)
}

// UserID returns the id sealed in the request's cookie. A missing,
// tampered or unparsable cookie is reported as ok == false.
func (c *Cookies) UserID(ctx *gin.Context) (id int64, ok bool) {
	value, err := ctx.Cookie(CookieName)
	if err != nil || value == "" {
		return 0, false
	}
	plaintext, err := c.sealer.Open(value)
	if err != nil {
		return 0, false
	}
	id, err = strconv.ParseInt(plaintext, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
