package repository

import "context"

// KV is the key-value persistence collaborator the cart engine mirrors its
// state into. Implementations return pkg/errors.ErrNotFound (wrapped) for
// missing keys.
type KV interface {
	// Get retrieves the value stored under key.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any existing value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the value stored under key. Deleting a missing key is
	// not an error.
	Delete(ctx context.Context, key string) error
}
