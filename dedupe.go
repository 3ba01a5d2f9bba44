package main

// deduplicator remembers the post IDs accepted during one run. It is owned
// by the processor and discarded when the run ends; nothing persists across
// runs. Single-threaded access only.
type deduplicator struct {
	seen map[string]bool
}

func newDeduplicator() *deduplicator {
	return &deduplicator{seen: make(map[string]bool)}
}

// accept records id on first sight and returns true; it returns false on
// every repeat. It must be consulted before a record is counted or written.
func (d *deduplicator) accept(id string) bool {
	if d.seen[id] {
		return false
	}
	d.seen[id] = true
	return true
}

// size returns how many unique IDs have been accepted so far.
func (d *deduplicator) size() int {
	return len(d.seen)
}
