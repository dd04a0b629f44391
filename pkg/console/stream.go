package console

import (
	"log"
	"net/http"
	"time"
)

const streamWriteTimeout = 10 * time.Second

// streamDashboard pushes every published dashboard snapshot over a
// websocket, starting with the current one so a fresh client never
// waits for the next poll cycle.
func (s *Server) streamDashboard(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Dashboard stream upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	updates, unsubscribe := s.deps.Dashboard.Subscribe()
	defer unsubscribe()

	if state, ok := s.deps.Dashboard.Current(); ok {
		if err := s.writeState(conn, state); err != nil {
			return
		}
	}

	// Reader goroutine notices client disconnects; the stream itself is
	// write-only.
	closed := make(chan struct{})

	go func() {
		defer close(closed)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-closed:
			return
		case state := <-updates:
			if err := s.writeState(conn, state); err != nil {
				return
			}
		}
	}
}

func (s *Server) writeState(conn wsConn, state interface{}) error {
	if err := conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout)); err != nil {
		return err
	}

	if err := conn.WriteJSON(state); err != nil {
		log.Printf("Dashboard stream write failed: %v", err)
		return err
	}

	return nil
}

// wsConn is the slice of *websocket.Conn the stream writer needs.
type wsConn interface {
	SetWriteDeadline(t time.Time) error
	WriteJSON(v interface{}) error
}
