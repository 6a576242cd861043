package app

import (
	"io"

	"github.com/viant/afs"
	"github.com/viant/customtab/session"
)

// Option represents service option
type Option func(s *Service)

// WithOutput sets writers for rendered callbacks and for logs
func WithOutput(stdout, stderr io.Writer) Option {
	return func(s *Service) {
		s.stdout = stdout
		s.stderr = stderr
	}
}

// WithLauncher sets launcher
func WithLauncher(launcher session.Launcher) Option {
	return func(s *Service) {
		s.launcher = launcher
	}
}

// WithFS sets file system used to load config files
func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}
