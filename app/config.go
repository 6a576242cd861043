package app

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"golang.org/x/oauth2"
	"gopkg.in/yaml.v3"
)

// OAuth2Config represents an oauth2 client config file
type OAuth2Config struct {
	ClientID     string   `yaml:"clientId" json:"clientId"`
	ClientSecret string   `yaml:"clientSecret,omitempty" json:"clientSecret,omitempty"`
	AuthURL      string   `yaml:"authURL" json:"authURL"`
	TokenURL     string   `yaml:"tokenURL,omitempty" json:"tokenURL,omitempty"`
	Scopes       []string `yaml:"scopes,omitempty" json:"scopes,omitempty"`
}

// Config returns oauth2 config
func (c *OAuth2Config) Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Endpoint:     oauth2.Endpoint{AuthURL: c.AuthURL, TokenURL: c.TokenURL},
		Scopes:       c.Scopes,
	}
}

// loadOptions loads options file, yaml decoding covers json too
func loadOptions(ctx context.Context, fs afs.Service, URL string) (*Options, error) {
	ret := &Options{}
	if err := load(ctx, fs, URL, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

func loadOAuth2Config(ctx context.Context, fs afs.Service, URL string) (*oauth2.Config, error) {
	cfg := &OAuth2Config{}
	if err := load(ctx, fs, URL, cfg); err != nil {
		return nil, err
	}
	if cfg.ClientID == "" || cfg.AuthURL == "" {
		return nil, fmt.Errorf("invalid oauth2 config %v: clientId and authURL are required", URL)
	}
	return cfg.Config(), nil
}

func load(ctx context.Context, fs afs.Service, URL string, dest interface{}) error {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return fmt.Errorf("failed to download %v: %w", URL, err)
	}
	if err = yaml.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode %v: %w", URL, err)
	}
	return nil
}
