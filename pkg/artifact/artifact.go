// Package artifact manages transient downloadable payloads (mission
// files, audit documents). A handle owns its backing bytes; releasing
// it frees them. Each logical slot holds at most one live handle, so a
// replacement always releases its predecessor before publication.
package artifact

import (
	"sync"

	"github.com/google/uuid"
)

// Slot names a logical artifact position in the console.
type Slot string

const (
	// SlotWorkflowMission holds the waypoint file produced by the scan
	// workflow. Exports never touch it.
	SlotWorkflowMission Slot = "workflow_mission"

	SlotMission     Slot = "mission"
	SlotAuditReport Slot = "audit_report"
)

// Handle is a transient reference to a downloadable payload.
type Handle struct {
	id        string
	filename  string
	mediaType string

	mu       sync.Mutex
	payload  []byte
	released bool
}

// NewHandle wraps a payload as a downloadable handle.
func NewHandle(filename, mediaType string, payload []byte) *Handle {
	return &Handle{
		id:        uuid.NewString(),
		filename:  filename,
		mediaType: mediaType,
		payload:   payload,
	}
}

// ID returns the unique reference id for this handle.
func (h *Handle) ID() string { return h.id }

// Filename returns the suggested download filename.
func (h *Handle) Filename() string { return h.filename }

// MediaType returns the payload content type.
func (h *Handle) MediaType() string { return h.mediaType }

// Payload returns the backing bytes, or ErrHandleReleased once the
// handle has been revoked.
func (h *Handle) Payload() ([]byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.released {
		return nil, ErrHandleReleased
	}

	return h.payload, nil
}

// Release revokes the handle and drops the backing payload. Releasing
// an already-released handle is a no-op.
func (h *Handle) Release() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.released = true
	h.payload = nil
}

// Released reports whether the handle has been revoked.
func (h *Handle) Released() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.released
}

// Store holds the live handle for each slot.
type Store struct {
	mu    sync.Mutex
	slots map[Slot]*Handle
}

// NewStore creates an empty artifact store.
func NewStore() *Store {
	return &Store{
		slots: make(map[Slot]*Handle),
	}
}

// Publish installs h as the live handle for slot, releasing any prior
// handle first so two live handles can never exist for one slot.
func (s *Store) Publish(slot Slot, h *Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.slots[slot]; ok {
		prev.Release()
	}

	s.slots[slot] = h
}

// Get returns the live handle for slot, if any.
func (s *Store) Get(slot Slot) (*Handle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.slots[slot]

	return h, ok
}

// Release revokes and removes the handle for slot, if present.
func (s *Store) Release(slot Slot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if h, ok := s.slots[slot]; ok {
		h.Release()
		delete(s.slots, slot)
	}
}

// ReleaseAll revokes every live handle. Called on view teardown.
func (s *Store) ReleaseAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for slot, h := range s.slots {
		h.Release()
		delete(s.slots, slot)
	}
}
