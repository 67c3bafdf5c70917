// Package repository declares the persistence interfaces used by the services.
package repository

import "context"

// KeyValueRepository is a namespaced textual key-value store: the local
// storage of the client.
//
// Get returns an error wrapping apperror.ErrNotFound when the key is absent.
// Set overwrites unconditionally. Delete of a missing key is not an error.
type KeyValueRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
