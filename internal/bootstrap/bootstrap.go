// Package bootstrap runs a long-lived process until it finishes or is signalled,
// then releases its resources.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

const defaultShutdownTimeout = 10 * time.Second

type shutdownHook struct {
	name string
	fn   func(ctx context.Context) error
}

// App runs a process and calls its shutdown hooks once when it stops.
type App struct {
	mu              sync.Mutex
	hooks           []shutdownHook
	signals         []os.Signal
	shutdownTimeout time.Duration
}

type Option func(*App)

// WithSignals replaces the signals that stop the app. Defaults to SIGINT and SIGTERM.
func WithSignals(signals ...os.Signal) Option {
	return func(a *App) {
		a.signals = signals
	}
}

// WithShutdownTimeout bounds the time given to the shutdown hooks.
func WithShutdownTimeout(timeout time.Duration) Option {
	return func(a *App) {
		a.shutdownTimeout = timeout
	}
}

func New(opts ...Option) *App {
	a := &App{
		signals:         []os.Signal{os.Interrupt, syscall.SIGTERM},
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AddShutdownHook registers fn under name. Hooks run in reverse order of registration.
func (a *App) AddShutdownHook(name string, fn func(ctx context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, shutdownHook{name: name, fn: fn})
}

// AddCloser registers a Close method as a shutdown hook.
func (a *App) AddCloser(name string, closer interface{ Close() error }) {
	a.AddShutdownHook(name, func(context.Context) error {
		return closer.Close()
	})
}

// Run calls run with a context cancelled on the configured signals.
// When a signal arrives the hooks run first and then Run waits for run to return;
// otherwise the hooks run after run returns. Errors from run and the hooks are joined.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, a.signals...)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx)
	}()

	select {
	case err := <-errCh:
		return errors.Join(err, a.shutdown())
	case <-ctx.Done():
		slog.Default().Info("shutting down", slog.Any("cause", context.Cause(ctx)))
		shutdownErr := a.shutdown()
		return errors.Join(<-errCh, shutdownErr)
	}
}

func (a *App) shutdown() error {
	a.mu.Lock()
	hooks := a.hooks
	a.hooks = nil
	a.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()

	var errs []error
	for i := len(hooks) - 1; i >= 0; i-- {
		if err := hooks[i].fn(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown %s: %w", hooks[i].name, err))
		}
	}
	return errors.Join(errs...)
}
