// Package common contains shared constants and sentinel errors used across
// Pinpoint components.
package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token on
// protected requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the access token inside the authorization header.
const BearerPrefix = "Bearer "
