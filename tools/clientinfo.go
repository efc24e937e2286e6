package tools

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// UnknownIP is the sentinel used when no proxy header carries a client address.
const UnknownIP = "unknown"

// ipHeaders in priority order. X-Forwarded-For wins because every proxy in
// front of us appends to it; the others are single-value fallbacks.
var ipHeaders = []string{
	"X-Forwarded-For",
	"X-Real-Ip",
	"Cf-Connecting-Ip",
}

// ClientIP returns the best-effort client address from proxy headers.
// X-Forwarded-For may hold a comma-separated chain; the first entry is the
// original client.
func ClientIP(h http.Header) string {
	for _, name := range ipHeaders {
		v := strings.TrimSpace(h.Get(name))
		if v == "" {
			continue
		}
		if i := strings.IndexByte(v, ','); i >= 0 {
			v = strings.TrimSpace(v[:i])
		}
		if v != "" {
			return v
		}
	}
	return UnknownIP
}

// SessionID returns the client-supplied correlation token, or mints a fresh
// one when the header is absent. The token is not a credential.
func SessionID(h http.Header) string {
	if v := strings.TrimSpace(h.Get("X-Session-Id")); v != "" {
		return v
	}
	return "session_" + uuid.NewString()
}
