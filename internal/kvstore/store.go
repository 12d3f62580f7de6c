// Package kvstore defines the persistent string key-value store every
// top-level record lives in, together with its backends.
package kvstore

// Store is a synchronous string-keyed, string-valued store. Get reports
// ok=false with a nil error when the key is absent.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
	Ping() error
	Close() error
}
