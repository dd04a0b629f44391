// Package lifecycle runs the console's long-lived pieces (the HTTP
// front end plus background services) and coordinates their shutdown
// on signal.
package lifecycle

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	ShutdownTimeout = 10 * time.Second
)

// Service defines the interface that all background services must
// implement.
type Service interface {
	Start(context.Context) error
	Stop(context.Context) error
}

// HTTPServer is the front-end surface managed alongside the services.
type HTTPServer interface {
	Start(addr string) error
	Shutdown(ctx context.Context) error
}

// ServerOptions holds configuration for running the console.
type ServerOptions struct {
	ListenAddr  string
	ServiceName string
	Server      HTTPServer
	Services    []Service
}

// RunServer starts the HTTP server and all services, then blocks until
// a signal, a service failure or context cancellation triggers an
// orderly shutdown.
func RunServer(ctx context.Context, opts *ServerOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log.Printf("*** Starting service %s", opts.ServiceName)

	errChan := make(chan error, 1)

	for _, svc := range opts.Services {
		if err := svc.Start(ctx); err != nil {
			return fmt.Errorf("failed to start service: %w", err)
		}
	}

	go func() {
		log.Printf("Starting HTTP server on %s", opts.ListenAddr)

		if err := opts.Server.Start(opts.ListenAddr); err != nil {
			select {
			case errChan <- err:
			default:
				log.Printf("HTTP server error: %v", err)
			}
		}
	}()

	return handleShutdown(ctx, cancel, opts, errChan)
}

func handleShutdown(ctx context.Context, cancel context.CancelFunc, opts *ServerOptions, errChan chan error) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var runErr error

	select {
	case sig := <-sigChan:
		log.Printf("Received signal %v, initiating shutdown", sig)
	case err := <-errChan:
		log.Printf("Received error: %v, initiating shutdown", err)

		runErr = fmt.Errorf("service error: %w", err)
	case <-ctx.Done():
		log.Printf("Context canceled, initiating shutdown")

		runErr = ctx.Err()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer shutdownCancel()

	cancel()

	if err := opts.Server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during HTTP shutdown: %v", err)
	}

	for _, svc := range opts.Services {
		if err := svc.Stop(shutdownCtx); err != nil {
			log.Printf("Error during service shutdown: %v", err)

			if runErr == nil {
				runErr = fmt.Errorf("shutdown error: %w", err)
			}
		}
	}

	return runErr
}
