package session

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/viant/customtab/callback"
)

// Manager owns an overlay session: a launcher, a redirect endpoint and the ingestor fed by it
type Manager struct {
	ingestor     *callback.Ingestor
	endpoint     *Endpoint
	launcher     Launcher
	logger       zerolog.Logger
	listenAddr   string
	path         string
	scheme       string
	subscription string
	events       chan *callback.State
}

// Start starts the redirect endpoint
func (m *Manager) Start(ctx context.Context) error {
	if err := m.endpoint.Start(ctx); err != nil {
		return err
	}
	m.logger.Debug().Str("redirectURL", m.endpoint.RedirectURL()).Msg("redirect endpoint started")
	return nil
}

// RedirectURL returns the URL the browser has to be redirected to
func (m *Manager) RedirectURL() string {
	return m.endpoint.RedirectURL()
}

// Ingestor returns the callback ingestor
func (m *Manager) Ingestor() *callback.Ingestor {
	return m.ingestor
}

// Open validates URL and launches it
func (m *Manager) Open(ctx context.Context, URL string) error {
	URL = strings.TrimSpace(URL)
	if err := validateURL(URL); err != nil {
		return err
	}
	if err := m.launcher.Open(ctx, URL); err != nil {
		return fmt.Errorf("failed to open %v: %w", URL, err)
	}
	m.logger.Info().Str("url", URL).Msg("session opened")
	return nil
}

// Deliver hands a redirect event to the ingestor, nil u is a skipped event
func (m *Manager) Deliver(u *url.URL) bool {
	return m.ingestor.Ingest(u)
}

// Wait returns the next received callback that has data
func (m *Manager) Wait(ctx context.Context) (*callback.State, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case state := <-m.events:
		return state, nil
	}
}

// Close stops the endpoint and detaches from the ingestor
func (m *Manager) Close() error {
	m.ingestor.Unsubscribe(m.subscription)
	return m.endpoint.Close()
}

func (m *Manager) onState(state *callback.State) {
	if !state.HasData() {
		return
	}
	for {
		select {
		case m.events <- state:
			return
		default:
		}
		select {
		case <-m.events:
			m.logger.Warn().Msg("dropped unread callback")
		default:
		}
	}
}

func validateURL(URL string) error {
	if URL == "" {
		return fmt.Errorf("url was empty")
	}
	u, err := url.Parse(URL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("url missing scheme or host: %q", URL)
	}
	return nil
}

// New creates a session manager
func New(ingestor *callback.Ingestor, options ...Option) *Manager {
	ret := &Manager{
		ingestor: ingestor,
		logger:   zerolog.Nop(),
		events:   make(chan *callback.State, eventBuffer),
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.launcher == nil {
		ret.launcher = NewBrowser(&Printer{Writer: os.Stderr}, ret.logger)
	}
	ret.endpoint = NewEndpoint(ret.listenAddr, ret.path, ret.scheme, ret.Deliver)
	ret.subscription = ingestor.Subscribe(ret.onState)
	return ret
}
