// Package storage provides the object-store port used for profile
// pictures, plus a local-disk implementation. The contract is deliberately
// small: upload bytes under a path and hand back a durable public URL.
package storage

import "context"

// ObjectStore is the port the avatar service depends on.
type ObjectStore interface {
	// Upload stores data under path, overwriting any existing object.
	Upload(ctx context.Context, path string, data []byte) error
	// PublicURL returns the durable public URL for a stored path.
	PublicURL(path string) string
}
