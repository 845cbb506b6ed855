package ports

import "context"

// KeyValueStore is the opaque persistence API every collection is stored
// behind: string keys, string payloads, asynchronous operations. GetItem
// returns the empty string when the key is absent.
type KeyValueStore interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
}
