package session

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSealer(t *testing.T, fill byte) *Sealer {
	t.Helper()
	s, err := NewSealer(bytes.Repeat([]byte{fill}, 32))
	require.NoError(t, err)
	return s
}

func TestSealerRoundTrip(t *testing.T) {
	s := newSealer(t, 1)

	a, err := s.Seal("42")
	require.NoError(t, err)
	b, err := s.Seal("42")
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "nonce must differ per seal")

	plain, err := s.Open(a)
	require.NoError(t, err)
	assert.Equal(t, "42", plain)
}

func TestSealerRejectsForeignKeyAndTampering(t *testing.T) {
	s := newSealer(t, 1)
	other := newSealer(t, 2)

	sealed, err := s.Seal("7")
	require.NoError(t, err)

	_, err = other.Open(sealed)
	assert.ErrorIs(t, err, ErrInvalidCookie)

	tampered := []byte(sealed)
	if tampered[0] == 'A' {
		tampered[0] = 'B'
	} else {
		tampered[0] = 'A'
	}
	_, err = s.Open(string(tampered))
	assert.ErrorIs(t, err, ErrInvalidCookie)

	_, err = s.Open("not base64 !!")
	assert.ErrorIs(t, err, ErrInvalidCookie)
	_, err = s.Open("")
	assert.ErrorIs(t, err, ErrInvalidCookie)
}

func TestNewSealerKeyLength(t *testing.T) {
	_, err := NewSealer(make([]byte, 16))
	assert.Error(t, err)
}

func TestCookies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cookies := NewCookies(newSealer(t, 3), false)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, cookies.Set(c, 99))

	resp := w.Result()
	require.Len(t, resp.Cookies(), 1)
	issued := resp.Cookies()[0]
	assert.Equal(t, CookieName, issued.Name)
	assert.True(t, issued.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, issued.SameSite)
	assert.NotContains(t, issued.Value, "99")

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c2.Request.AddCookie(issued)
	id, ok := cookies.UserID(c2)
	assert.True(t, ok)
	assert.Equal(t, int64(99), id)

	c2.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok = cookies.UserID(c2)
	assert.False(t, ok)

	c2.Request.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage"})
	_, ok = cookies.UserID(c2)
	assert.False(t, ok)
}

func TestCookiesSecure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cookies := NewCookies(newSealer(t, 4), true)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	cookies.Clear(c)

	issued := w.Result().Cookies()[0]
	assert.True(t, issued.Secure)
	assert.Equal(t, http.SameSiteNoneMode, issued.SameSite)
	assert.Less(t, issued.MaxAge, 0)
}
