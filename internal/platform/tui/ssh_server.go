package tui

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/leaderboard"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// SSHServer serves 2048 over SSH. Each user gets their own saved game while
// the leaderboard is shared by everyone connected to the server.
type SSHServer struct {
	config  config.Config
	server  *ssh.Server
	store   *storage.Store
	leaders *leaderboard.Store
	logger  *log.Logger
}

// NewSSHServer creates a server over an open store. The server does not
// take ownership of the store.
func NewSSHServer(cfg config.Config, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "t2048-ssh",
		})
	}

	leaders := leaderboard.New(store,
		leaderboard.WithCapacity(cfg.Leaderboard.Capacity),
		leaderboard.WithDefaultName(cfg.Leaderboard.DefaultName),
		leaderboard.WithLogger(logger),
	)

	srv := &SSHServer{
		config:  cfg,
		store:   store,
		leaders: leaders,
		logger:  logger,
	}

	hostKeyPath, err := resolveHostKeyPath(cfg.Server.HostKeyPath)
	if err != nil {
		return nil, err
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Server.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.Server.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// resolveHostKeyPath defaults to ~/.arcade/t2048_host_key and makes sure
// the key directory exists. Wish generates the key on first start.
func resolveHostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".arcade", "t2048_host_key")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// NewUserSession loads the saved game of user, namespaced in the shared store.
func (s *SSHServer) NewUserSession(user string) *t2048.Session {
	logger := s.logger.With("user", user)
	gateway := storage.WithPrefix(s.store, storage.UserPrefix(user))

	session := t2048.NewSession(gateway, s.leaders, s.config.Game,
		t2048.WithLogger(logger),
		t2048.WithRand(rand.New(rand.NewSource(time.Now().UnixNano()))),
		t2048.WithGameOverHook(func(snap t2048.Snapshot) {
			logger.Info("game finished", "score", snap.Score, "maxTile", snap.MaxTile)
		}),
	)
	session.Load()
	return session
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW: pty.Window.Width,
		ScreenH: pty.Window.Height,
	}

	session := s.NewUserSession(sshSession.User())
	model := NewModel(session, s.leaders, cfg, playerName(sshSession.User(), s.config.Leaderboard.DefaultName))

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// playerName prefers the SSH user name over the configured placeholder.
func playerName(user, fallback string) string {
	if user == "" {
		return fallback
	}
	return user
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	saves, err := s.store.UserSaves()
	if err != nil {
		s.logger.Warn("could not list saved games", "error", err)
	}
	s.logger.Info("starting SSH server", "address", s.config.Server.Address, "savedGames", len(saves))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
	case err := <-errCh:
		s.logger.Error("server error", "error", err)
		return err
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Server.Address
}
