package clientstate

import (
	"encoding/base64"
	"log/slog"
	"net/http"
)

const (
	// cookiePrefix namespaces all stride client-state cookies.
	cookiePrefix = "stride_"

	// cookieMaxAge keeps cart and session state for 30 days.
	cookieMaxAge = 30 * 24 * 60 * 60

	// maxCookieValueLen is the practical per-cookie size limit; browsers
	// silently drop cookies past roughly 4 KB.
	maxCookieValueLen = 4096
)

// CookieJar is a KV backed by request/response cookies. Values are
// base64url-encoded so serialized JSON survives cookie value restrictions.
// Reads see writes made through the same jar within a request, so a
// load-append-save sequence observes its own effects.
type CookieJar struct {
	r       *http.Request
	w       http.ResponseWriter
	secure  bool
	pending map[string]*string // value, or nil for deletion
}

// NewCookieJar creates a cookie-backed KV for one request/response pair.
func NewCookieJar(w http.ResponseWriter, r *http.Request, secure bool) *CookieJar {
	return &CookieJar{
		r:       r,
		w:       w,
		secure:  secure,
		pending: make(map[string]*string),
	}
}

// Get returns the value for key, preferring writes made through this jar
// over the cookie sent by the client. A cookie that fails to decode is
// treated as absent.
func (j *CookieJar) Get(key string) (string, bool) {
	if v, ok := j.pending[key]; ok {
		if v == nil {
			return "", false
		}
		return *v, true
	}

	cookie, err := j.r.Cookie(cookiePrefix + key)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	decoded, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return "", false
	}
	return string(decoded), true
}

// Set overwrites the stored value. A value whose encoding exceeds the
// practical cookie size limit is still written, but the browser is likely to
// drop it, so the oversize write is logged.
func (j *CookieJar) Set(key, value string) {
	j.pending[key] = &value
	encoded := base64.RawURLEncoding.EncodeToString([]byte(value))
	if len(encoded) > maxCookieValueLen {
		slog.Default().Warn("client-state cookie exceeds the practical size limit and may be dropped by the browser",
			slog.String("cookie", cookiePrefix+key),
			slog.Int("encoded_bytes", len(encoded)))
	}
	http.SetCookie(j.w, &http.Cookie{
		Name:     cookiePrefix + key,
		Value:    encoded,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		Secure:   j.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Delete removes the key by expiring its cookie.
func (j *CookieJar) Delete(key string) {
	j.pending[key] = nil
	http.SetCookie(j.w, &http.Cookie{
		Name:     cookiePrefix + key,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   j.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
