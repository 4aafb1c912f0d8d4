// Package presence tracks which users currently have a live connection.
package presence

import "errors"

// ErrInvalidIdentity is returned when a user identifies with an empty name.
var ErrInvalidIdentity = errors.New("presence: invalid identity")

// Directory maps a username to its live connection handle. At most one handle
// per name: a later Identify for the same name overwrites the earlier one.
// The directory is owned by the hub loop and does no locking of its own.
type Directory[H comparable] struct {
	handles map[string]H
	order   []string
}

func NewDirectory[H comparable]() *Directory[H] {
	return &Directory[H]{handles: make(map[string]H)}
}

// Identify binds user to handle, replacing any earlier binding for the same
// name. The replaced connection is orphaned, not closed: it keeps its room
// subscriptions until it disconnects on its own.
func (d *Directory[H]) Identify(user string, handle H) error {
	if user == "" {
		return ErrInvalidIdentity
	}
	if _, ok := d.handles[user]; !ok {
		d.order = append(d.order, user)
	}
	d.handles[user] = handle
	return nil
}

// Release removes every entry bound to handle and reports whether any entry
// was removed. Removing all matches rather than the first keeps presence from
// going stale if two names ever point at the same connection.
func (d *Directory[H]) Release(handle H) bool {
	removed := false
	for user, h := range d.handles {
		if h == handle {
			delete(d.handles, user)
			d.dropOrder(user)
			removed = true
		}
	}
	return removed
}

func (d *Directory[H]) dropOrder(user string) {
	for i, u := range d.order {
		if u == user {
			d.order = append(d.order[:i], d.order[i+1:]...)
			return
		}
	}
}

// Resolve returns the live handle for user, if any.
func (d *Directory[H]) Resolve(user string) (H, bool) {
	h, ok := d.handles[user]
	return h, ok
}

// Snapshot returns the online usernames in identification order.
func (d *Directory[H]) Snapshot() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}
