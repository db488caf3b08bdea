package plainserv

import (
	"errors"
	"fmt"
	"net"

	"github.com/ser1103/plainserv/http/status"
	httpserver "github.com/ser1103/plainserv/internal/server/http"
	"github.com/ser1103/plainserv/internal/server/tcp"
	"github.com/ser1103/plainserv/settings"
)

// Ports below 1025 are reserved and refused at startup.
const minPort = 1025

var (
	errStop         = errors.New("stop")
	errGracefulStop = errors.New("graceful stop")
)

// App glues the listener, the settings and the per-connection handler
// together.
type App struct {
	settings settings.Settings
	hooks    hooks
	errCh    chan error
}

func New() *App {
	return &App{
		settings: settings.Default(),
		errCh:    make(chan error),
	}
}

// Tune replaces default settings.
func (a *App) Tune(s settings.Settings) *App {
	a.settings = settings.Fill(s)
	return a
}

// NotifyOnStart calls the callback at the moment the listener is bound and
// the server is about to accept connections.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback when the server is down. At that moment no
// new connections can arrive and all the old ones are disconnected.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Serve binds the listener and blocks until the server stops. A bind failure
// is returned immediately: startup is aborted, nothing is retried.
func (a *App) Serve() error {
	if a.settings.Port < minPort {
		return fmt.Errorf("plainserv: port %d is inside the reserved range (want %d-65535)",
			a.settings.Port, minPort)
	}

	sock, err := net.Listen("tcp", fmt.Sprintf(":%d", a.settings.Port))
	if err != nil {
		return fmt.Errorf("plainserv: listen: %w", err)
	}

	server := tcp.NewServer(sock, func(conn net.Conn) {
		httpserver.NewServer(a.settings).Handle(conn)
	})

	go func() {
		a.errCh <- server.Start()
	}()

	callIfNotNil(a.hooks.OnStart)

	err = <-a.errCh
	switch err {
	case errGracefulStop:
		_ = server.GracefulShutdown()
		err = <-a.errCh
	case errStop:
		_ = server.Stop()
		err = <-a.errCh
	}

	if errors.Is(err, status.ErrShutdown) {
		err = nil
	}

	callIfNotNil(a.hooks.OnStop)

	return err
}

// GracefulStop stops accepting new connections, but keeps serving the old
// ones. The call isn't blocking: the server keeps working until the last
// connection is handled.
func (a *App) GracefulStop() {
	a.errCh <- errGracefulStop
}

// Stop stops the whole application immediately, connections included. The
// call isn't blocking.
func (a *App) Stop() {
	a.errCh <- errStop
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
