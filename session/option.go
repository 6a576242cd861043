package session

import "github.com/rs/zerolog"

// Option represents manager option
type Option func(m *Manager)

// WithLauncher sets launcher
func WithLauncher(launcher Launcher) Option {
	return func(m *Manager) {
		m.launcher = launcher
	}
}

// WithLogger sets logger
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithListenAddr sets redirect endpoint listen address
func WithListenAddr(addr string) Option {
	return func(m *Manager) {
		m.listenAddr = addr
	}
}

// WithCallbackPath sets redirect endpoint path
func WithCallbackPath(path string) Option {
	return func(m *Manager) {
		m.path = path
	}
}

// WithScheme sets scheme reported for received redirects
func WithScheme(scheme string) Option {
	return func(m *Manager) {
		m.scheme = scheme
	}
}
