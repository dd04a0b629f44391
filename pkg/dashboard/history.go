package dashboard

// snapshotRing is a fixed-capacity ring of published snapshots, used to
// serve short trend history to views without re-fetching.
type snapshotRing struct {
	buf   []State
	pos   int
	count int
}

func newSnapshotRing(size int) *snapshotRing {
	return &snapshotRing{
		buf: make([]State, size),
	}
}

// Add records a snapshot, evicting the oldest once the ring is full.
// Callers hold the scheduler lock.
func (r *snapshotRing) Add(st State) {
	r.buf[r.pos] = st
	r.pos = (r.pos + 1) % len(r.buf)

	if r.count < len(r.buf) {
		r.count++
	}
}

// Recent returns up to n snapshots, newest first.
func (r *snapshotRing) Recent(n int) []State {
	if n > r.count {
		n = r.count
	}

	if n <= 0 {
		return nil
	}

	out := make([]State, 0, n)

	for i := 1; i <= n; i++ {
		idx := (r.pos - i + len(r.buf)) % len(r.buf)
		out = append(out, r.buf[idx])
	}

	return out
}
