package lifecycle

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	started atomic.Bool
	stopped atomic.Bool
	failure error
}

func (f *fakeService) Start(context.Context) error {
	f.started.Store(true)
	return f.failure
}

func (f *fakeService) Stop(context.Context) error {
	f.stopped.Store(true)
	return nil
}

type fakeServer struct {
	done     chan struct{}
	shutdown atomic.Bool
}

func newFakeServer() *fakeServer {
	return &fakeServer{done: make(chan struct{})}
}

func (f *fakeServer) Start(string) error {
	<-f.done
	return nil
}

func (f *fakeServer) Shutdown(context.Context) error {
	f.shutdown.Store(true)
	close(f.done)

	return nil
}

func TestRunServerStopsOnContextCancel(t *testing.T) {
	svc := &fakeService{}
	srv := newFakeServer()

	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)

	go func() {
		errCh <- RunServer(ctx, &ServerOptions{
			ListenAddr:  ":0",
			ServiceName: "console-test",
			Server:      srv,
			Services:    []Service{svc},
		})
	}()

	// Give the run loop a moment to start everything, then cancel.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("RunServer did not return after cancellation")
	}

	assert.True(t, svc.started.Load())
	assert.True(t, svc.stopped.Load())
	assert.True(t, srv.shutdown.Load())
}

func TestRunServerFailsFastOnServiceStartError(t *testing.T) {
	boom := errors.New("boom")
	svc := &fakeService{failure: boom}

	err := RunServer(context.Background(), &ServerOptions{
		ListenAddr:  ":0",
		ServiceName: "console-test",
		Server:      newFakeServer(),
		Services:    []Service{svc},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
