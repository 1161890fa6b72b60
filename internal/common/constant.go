package common

// AuthHeaderName is the HTTP header used to carry the bearer token on
// outbound requests.
const AuthHeaderName = "Authorization"

// RequestIDHeaderName carries a per-request correlation id so client logs can
// be matched against backend logs.
const RequestIDHeaderName = "X-Request-Id"
