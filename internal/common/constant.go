// Package common contains shared constants and sentinel errors used across
// gophvault components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// AccountIDKey is the logging attribute carrying the authenticated account id.
const AccountIDKey = "account_id"
