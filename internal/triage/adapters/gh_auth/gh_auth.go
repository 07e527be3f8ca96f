// Package ghauth builds authenticated GitHub clients. Two credential
// shapes are supported: a personal access token, and a GitHub App
// installation (the usual shape for a bot identity that reviews PRs).
package ghauth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
	gogithub "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"
)

// NewTokenClient builds a client authenticated with a bearer token.
func NewTokenClient(ctx context.Context, token string) *gogithub.Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return gogithub.NewClient(oauth2.NewClient(ctx, ts))
}

// NewAppClient builds a client authenticated as a GitHub App
// installation using the private key at keyPath.
func NewAppClient(appID, installationID int64, keyPath string) (*gogithub.Client, error) {
	itr, err := ghinstallation.NewKeyFromFile(http.DefaultTransport, appID, installationID, keyPath)
	if err != nil {
		return nil, fmt.Errorf("creating installation transport: %w", err)
	}
	return gogithub.NewClient(&http.Client{Transport: itr}), nil
}
