package app

import (
	"context"
	"os"
	"os/signal"

	"github.com/jessevdk/go-flags"
	"github.com/viant/afs"
)

// ParseOptions parses args, flags take precedence over the config file
func ParseOptions(ctx context.Context, fs afs.Service, args []string) (*Options, error) {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return nil, err
	}
	if options.ConfigURL == "" {
		return options, nil
	}
	base, err := loadOptions(ctx, fs, options.ConfigURL)
	if err != nil {
		return nil, err
	}
	if _, err = flags.ParseArgs(base, args); err != nil {
		return nil, err
	}
	return base, nil
}

// Run runs the command with args
func Run(args []string, opts ...Option) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	options, err := ParseOptions(ctx, afs.New(), args)
	if err != nil {
		return err
	}
	srv, err := New(options, opts...)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}
