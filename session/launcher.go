package session

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/rs/zerolog"
)

// Launcher opens URL for the user
type Launcher interface {
	Open(ctx context.Context, URL string) error
}

// Printer writes URL so that the user can open it manually
type Printer struct {
	Writer io.Writer
}

func (p *Printer) Open(ctx context.Context, URL string) error {
	_, err := fmt.Fprintf(p.Writer, "Open the following URL in your browser:\n%s\n", URL)
	return err
}

// Browser starts the OS default browser, it falls back to Fallback when no opener is found
type Browser struct {
	Fallback Launcher
	logger   zerolog.Logger
	openers  [][]string
}

func (b *Browser) Open(ctx context.Context, URL string) error {
	for _, opener := range b.openers {
		if _, err := exec.LookPath(opener[0]); err != nil {
			continue
		}
		args := append(append([]string{}, opener[1:]...), URL)
		cmd := exec.CommandContext(ctx, opener[0], args...)
		if err := cmd.Start(); err != nil {
			b.logger.Warn().Err(err).Str("opener", opener[0]).Msg("failed to start browser")
			continue
		}
		go func() { _ = cmd.Wait() }()
		b.logger.Debug().Str("opener", opener[0]).Str("url", URL).Msg("browser started")
		return nil
	}
	if b.Fallback == nil {
		return fmt.Errorf("failed to find browser opener for %v", URL)
	}
	return b.Fallback.Open(ctx, URL)
}

// NewBrowser creates a browser launcher
func NewBrowser(fallback Launcher, logger zerolog.Logger) *Browser {
	return &Browser{
		Fallback: fallback,
		logger:   logger,
		openers: [][]string{
			{"xdg-open"},
			{"open"},
			{"rundll32", "url.dll,FileProtocolHandler"},
		},
	}
}
