package session

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// Authorization represents an authorization-code start URL
type Authorization struct {
	URL          string
	State        string
	CodeVerifier string
}

// AuthCodeURL builds an authorization-code URL with S256 PKCE that redirects to redirectURL, empty state gets generated
func AuthCodeURL(config *oauth2.Config, redirectURL, state string) (*Authorization, error) {
	if config == nil || config.Endpoint.AuthURL == "" {
		return nil, fmt.Errorf("oauth2 config auth URL was empty")
	}
	if redirectURL == "" {
		return nil, fmt.Errorf("redirect URL was empty")
	}
	if state == "" {
		state = uuid.New().String()
	}
	verifier := oauth2.GenerateVerifier()
	cfg := *config
	cfg.RedirectURL = redirectURL
	URL := cfg.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.S256ChallengeOption(verifier),
	)
	return &Authorization{URL: URL, State: state, CodeVerifier: verifier}, nil
}
