package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/client/client"
	"github.com/dmitrijs2005/gophvault/internal/client/config"
	"github.com/dmitrijs2005/gophvault/internal/client/services"
	"github.com/dmitrijs2005/gophvault/internal/filex"
	"github.com/dmitrijs2005/gophvault/internal/logging"
	"github.com/dmitrijs2005/gophvault/internal/session"
)

// Connectivity of the backend as last seen by the watcher.
type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
	ModeLocal   Mode = "local"
)

// emailMemory remembers the last email that unlocked the vault.
type emailMemory interface {
	LastEmail(ctx context.Context) string
	RememberEmail(ctx context.Context, email string) error
	ForgetEmail(ctx context.Context) error
}

type App struct {
	config       *config.Config
	backend      client.Backend
	authService  services.AuthService
	vaultService services.VaultService
	emails       emailMemory
	logger       logging.Logger
	reader       *bufio.Reader
	out          io.Writer

	mu      sync.RWMutex
	mode    Mode
	session *session.Session
}

// NewApp opens the backend selected by c.Mode.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger := logging.New(os.Stderr, false, slog.LevelWarn)

	var (
		backend client.Backend
		emails  emailMemory
		mode    Mode
	)

	switch c.Mode {
	case config.ModeLocal:
		if _, err := filex.EnsureParentDir(c.LocalDSN); err != nil {
			return nil, err
		}
		db, err := client.InitDatabase(ctx, c.LocalDSN)
		if err != nil {
			logger.Error(ctx, "error initializing database", "error", err)
			return nil, err
		}
		local := client.NewLocalStore(db)
		backend, emails, mode = local, local, ModeLocal
	default:
		remote, err := client.NewGRPCClient(c.ServerEndpointAddr)
		if err != nil {
			return nil, err
		}
		backend, mode = remote, ModeOffline
	}

	return &App{
		config:       c,
		backend:      backend,
		authService:  services.NewAuthService(backend, c.KDFParams, logger),
		vaultService: services.NewVaultService(backend),
		emails:       emails,
		logger:       logger,
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
		mode:         mode,
	}, nil
}

// Run blocks until the user exits or ctx is done. The session is locked and
// the backend closed on the way out.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if sess := a.currentSession(); sess != nil {
			a.authService.Lock(sess)
		}
		if err := a.backend.Close(); err != nil {
			a.logger.Warn(ctx, "backend close failed", "error", err)
		}
	}()

	if a.config.Mode == config.ModeRemote {
		a.checkOnline(ctx)
		go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}

	fmt.Fprintln(a.out, "Welcome to gophvault (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) currentSession() *session.Session {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session
}

func (a *App) setSession(s *session.Session) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session = s
}

func (a *App) isLoggedIn() bool {
	s := a.currentSession()
	return s != nil && s.Active()
}

func (a *App) getMode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Warn(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

func (a *App) getStatus() string {
	s := ""
	if sess := a.currentSession(); sess != nil {
		s = sess.Email() + " "
		if !sess.Active() {
			s += "locked "
		}
	}
	s += string(a.getMode())
	return fmt.Sprintf("(%s)", s)
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.authService.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher pings the backend every interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
