// Package metadata keeps client settings, such as the last used email, in
// the local vault database. Values are plain text and never secret.
package metadata

import "context"

type Repository interface {
	// Get reports ok=false for a name that was never stored.
	Get(ctx context.Context, name string) (value string, ok bool, err error)
	Put(ctx context.Context, name, value string) error
	Delete(ctx context.Context, name string) error
}
