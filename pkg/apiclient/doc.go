// Package apiclient wraps every outbound call to the portfolio admin
// backend behind one contract: bearer-token auth resolved from injectable
// session storage, demo-mode substitution for the reserved sentinel token,
// sliding-expiration token renewal from the X-New-Token response header,
// and normalization of all failures into *APIError carrying the HTTP
// status (0 for transport failures).
//
// A 401 anywhere clears the stored session and publishes a SessionExpired
// signal; callers are expected to catch *APIError and surface it as an
// error toast rather than letting it propagate.
package apiclient
