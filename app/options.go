package app

import (
	"fmt"
	"time"
)

// Options defines customtab command options, any option can also come from a config file
type Options struct {
	URL             string        `yaml:"url,omitempty" json:"url,omitempty" short:"u" long:"url" description:"url to open in the browser"`
	ConfigURL       string        `yaml:"-" json:"-" short:"c" long:"config" description:"options file URL (yaml or json)"`
	OAuth2ConfigURL string        `yaml:"oauth2ConfigURL,omitempty" json:"oauth2ConfigURL,omitempty" short:"o" long:"oauth2" description:"oauth2 client config URL, opens an authorization-code URL instead of url"`
	ListenAddr      string        `yaml:"listen,omitempty" json:"listen,omitempty" short:"l" long:"listen" description:"redirect endpoint listen address"`
	Path            string        `yaml:"path,omitempty" json:"path,omitempty" short:"p" long:"path" description:"redirect endpoint callback path"`
	Scheme          string        `yaml:"scheme,omitempty" json:"scheme,omitempty" short:"s" long:"scheme" description:"scheme reported for received redirects"`
	Headless        bool          `yaml:"headless,omitempty" json:"headless,omitempty" short:"H" long:"headless" description:"print url instead of starting a browser"`
	Watch           bool          `yaml:"watch,omitempty" json:"watch,omitempty" short:"w" long:"watch" description:"keep rendering callbacks until interrupted"`
	Timeout         time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty" short:"t" long:"timeout" description:"max time to wait for a callback, e.g. 5m"`
	Format          string        `yaml:"format,omitempty" json:"format,omitempty" short:"f" long:"format" description:"output format" choice:"text" choice:"json" choice:"yaml"`
	LogLevel        string        `yaml:"logLevel,omitempty" json:"logLevel,omitempty" long:"log-level" description:"log level, e.g. debug, info, warn"`
	LogFormat       string        `yaml:"logFormat,omitempty" json:"logFormat,omitempty" long:"log-format" description:"log format" choice:"console" choice:"text" choice:"json"`
}

// Init sets defaults
func (o *Options) Init() {
	if o.Format == "" {
		o.Format = "text"
	}
	if o.LogLevel == "" {
		o.LogLevel = "info"
	}
	if o.LogFormat == "" {
		o.LogFormat = "console"
	}
}

// Validate checks if options are valid
func (o *Options) Validate() error {
	if o.URL == "" && o.OAuth2ConfigURL == "" {
		return fmt.Errorf("url was empty")
	}
	if o.Timeout < 0 {
		return fmt.Errorf("invalid timeout: %v", o.Timeout)
	}
	return nil
}
