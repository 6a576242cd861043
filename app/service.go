package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/viant/afs"
	"github.com/viant/customtab/callback"
	"github.com/viant/customtab/logging"
	"github.com/viant/customtab/render"
	"github.com/viant/customtab/session"
)

// Service opens a URL and renders callbacks received from the browser
type Service struct {
	options  *Options
	fs       afs.Service
	stdout   io.Writer
	stderr   io.Writer
	launcher session.Launcher
	logger   zerolog.Logger
	renderer render.Renderer
	ingestor *callback.Ingestor
	manager  *session.Manager
}

// Run starts the redirect endpoint, opens the URL and renders received callbacks
func (s *Service) Run(ctx context.Context) error {
	if s.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.options.Timeout)
		defer cancel()
	}
	if err := s.manager.Start(ctx); err != nil {
		return err
	}
	defer s.manager.Close()

	URL, err := s.startURL(ctx)
	if err != nil {
		return err
	}
	s.logger.Info().Str("redirectURL", s.manager.RedirectURL()).Msg("waiting for callback")
	if err = s.manager.Open(ctx, URL); err != nil {
		return err
	}
	for {
		state, err := s.manager.Wait(ctx)
		if err != nil {
			if s.options.Watch && errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("failed to receive callback: %w", err)
		}
		if err = s.renderer(s.stdout, state); err != nil {
			return err
		}
		if !s.options.Watch {
			return nil
		}
	}
}

func (s *Service) startURL(ctx context.Context) (string, error) {
	if s.options.OAuth2ConfigURL == "" {
		return s.options.URL, nil
	}
	config, err := loadOAuth2Config(ctx, s.fs, s.options.OAuth2ConfigURL)
	if err != nil {
		return "", err
	}
	authorization, err := session.AuthCodeURL(config, s.manager.RedirectURL(), "")
	if err != nil {
		return "", err
	}
	s.logger.Debug().Str("state", authorization.State).Msg("authorization URL created")
	return authorization.URL, nil
}

// Ingestor returns callback ingestor
func (s *Service) Ingestor() *callback.Ingestor {
	return s.ingestor
}

// New creates a service
func New(options *Options, opts ...Option) (*Service, error) {
	options.Init()
	if err := options.Validate(); err != nil {
		return nil, err
	}
	ret := &Service{options: options, fs: afs.New(), stdout: os.Stdout, stderr: os.Stderr}
	for _, opt := range opts {
		opt(ret)
	}
	var err error
	if ret.logger, err = logging.New(ret.stderr, options.LogLevel, options.LogFormat); err != nil {
		return nil, err
	}
	if ret.renderer, err = render.New(options.Format); err != nil {
		return nil, err
	}
	if ret.launcher == nil {
		printer := &session.Printer{Writer: ret.stderr}
		if options.Headless {
			ret.launcher = printer
		} else {
			ret.launcher = session.NewBrowser(printer, ret.logger)
		}
	}
	ret.ingestor = callback.New(callback.WithLogger(ret.logger.With().Str("component", "callback").Logger()))
	ret.manager = session.New(ret.ingestor,
		session.WithLauncher(ret.launcher),
		session.WithLogger(ret.logger.With().Str("component", "session").Logger()),
		session.WithListenAddr(options.ListenAddr),
		session.WithCallbackPath(options.Path),
		session.WithScheme(options.Scheme),
	)
	return ret, nil
}
