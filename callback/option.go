package callback

import "github.com/rs/zerolog"

// Option represents ingestor option
type Option func(i *Ingestor)

// WithLogger sets logger
func WithLogger(logger zerolog.Logger) Option {
	return func(i *Ingestor) {
		i.logger = logger
	}
}

// WithListener registers listener at construction time
func WithListener(listener Listener) Option {
	return func(i *Ingestor) {
		i.Subscribe(listener)
	}
}
