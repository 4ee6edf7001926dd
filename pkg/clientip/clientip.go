package clientip

import (
	"errors"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// ErrNoAddress is returned when no usable address is found in the request.
var ErrNoAddress = errors.New("clientip: no client address in request")

// Forwarding headers consulted for trusted proxies, highest priority first.
var proxyHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// FromRequest returns the normalized client address. Forwarding headers are
// honoured only when trustProxy is set.
func FromRequest(r *http.Request, trustProxy bool) (string, error) {
	if trustProxy {
		for _, h := range proxyHeaders {
			if addr, ok := fromHeader(r.Header.Get(h)); ok {
				return addr, nil
			}
		}
	}
	if addr, ok := fromRemoteAddr(r.RemoteAddr); ok {
		return addr, nil
	}
	return "", ErrNoAddress
}

// KeyFunc adapts FromRequest to the key function signature used by
// github.com/go-chi/httprate.
func KeyFunc(trustProxy bool) func(r *http.Request) (string, error) {
	return func(r *http.Request) (string, error) {
		return FromRequest(r, trustProxy)
	}
}

func fromHeader(v string) (string, bool) {
	if v == "" {
		return "", false
	}
	// X-Forwarded-For carries a list; the client is the first valid entry.
	for part := range strings.SplitSeq(v, ",") {
		if addr, ok := parse(part); ok {
			return addr, true
		}
	}
	return "", false
}

func fromRemoteAddr(v string) (string, bool) {
	if host, _, err := net.SplitHostPort(v); err == nil {
		v = host
	}
	return parse(v)
}

func parse(s string) (string, bool) {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	return addr.Unmap().WithZone("").String(), true
}
