// Package clientstate holds the durable per-client key/value store backing
// the cart and session. The canonical implementation keeps every value in a
// browser cookie, so all state survives process restarts on the client side
// and the server stays stateless.
package clientstate

// Keys for the persisted client state. These are the only durable artifacts
// this application writes.
const (
	KeyCart  = "cart"
	KeyToken = "token"
	KeyRole  = "role"
)

// KV is a durable string key/value store scoped to one client. All writes
// are full replacements; there is no merging or locking. Execution is
// single-threaded per request, but a load-modify-store sequence should still
// be treated as one logical unit by callers.
type KV interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) (string, bool)

	// Set overwrites the stored value, replacing any prior value.
	Set(key, value string)

	// Delete removes the key entirely. Deleting an absent key is a no-op.
	Delete(key string)
}
