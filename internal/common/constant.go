package common

// AuthorizationHeaderName is the HTTP header carrying the bearer session
// token on authenticated requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token value in the authorization header.
const BearerPrefix = "Bearer "
