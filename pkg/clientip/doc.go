// Package clientip resolves the address of the client behind an HTTP request.
//
// Without trusted proxies only the connection address is used. When the
// service runs behind a proxy or CDN, Resolver.Trusted also consults
// CF-Connecting-IP, X-Forwarded-For (first valid entry) and X-Real-IP, in
// that order. The API uses KeyFunc as the per-client key for rate limiting.
package clientip
