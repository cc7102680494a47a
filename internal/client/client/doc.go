// Package client contains the vault backends the CLI can talk to.
//
// Both backends implement store.IdentityStore together with Authenticator,
// so the rest of the client does not care where records live:
//
//   - GRPCClient talks to the vault server. It injects the session's access
//     token, refreshes it once on expiry and rotates the new pair into the
//     session, and maps gRPC status codes to the sentinel errors in common.
//   - LocalStore keeps everything in a local SQLite file (InitDatabase applies
//     the embedded goose migrations) and authenticates by comparing verifiers.
//
// Errors are matched with errors.Is against common.ErrStoreUnavailable,
// common.ErrUnauthenticated, common.ErrInvalidCredentials and friends.
package client
