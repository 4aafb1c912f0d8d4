// Package room derives stable channel names for private and group chats.
package room

const separator = "_"

// Private returns the channel name for a one-to-one chat. The pair is sorted
// before joining, so both participants compute the same name regardless of
// who initiates.
func Private(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + separator + b
}

// Group returns the channel name for a group. Group ids are already stable
// opaque names, so this is the identity.
func Group(id string) string {
	return id
}
