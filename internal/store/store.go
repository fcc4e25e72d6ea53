// Package store provides the opaque key-value persistence adapter the rest
// of the application writes its serialized state blobs through. Consumers
// treat a failed parse of a stored value the same as absence.
package store

// Store is a synchronous key-value store. Get reports absence via its
// second return value; it never fails.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}
