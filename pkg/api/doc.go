// Package api exposes the validator over HTTP.
//
// Routes:
//
//	POST /v1/validate  {"rules": ["required", "minLength(5)"], "value": "abc"}
//	GET  /v1/rules     registered rules with their message templates
//	GET  /health       liveness probe
//	GET  /metrics      Prometheus exposition
//
// Successful responses are wrapped as {"data": ...} and errors as
// {"error": {"code": ..., "message": ...}}. A rule list naming an unknown rule
// answers 422 with code "invalid_rule"; failed rules are not an HTTP error and
// come back in data.errors with data.valid set to false.
package api
