package googleauth

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	drivev3 "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// GoogleAuth wraps oauth2 configuration and helpers for the Drive
// upload feature. Only the drive.file scope is requested.
type GoogleAuth struct {
	config    *oauth2.Config
	tokenPath string
}

// NewGoogleAuth creates GoogleAuth by reading the OAuth client
// credentials file. tokenPath is where the exchanged token is cached.
func NewGoogleAuth(credentialsPath, tokenPath string) (*GoogleAuth, error) {
	b, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read client secret file: %w", err)
	}
	config, err := google.ConfigFromJSON(b, drivev3.DriveFileScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse client secret file to config: %w", err)
	}
	if config.RedirectURL == "" {
		config.RedirectURL = "http://localhost:8080/auth/google/callback"
	}
	log.Printf("[auth] using credentials: %s", credentialsPath)
	return &GoogleAuth{config: config, tokenPath: tokenPath}, nil
}

// AuthURL generates the Google OAuth consent URL.
func (ga *GoogleAuth) AuthURL(state string) string {
	return ga.config.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// Exchange exchanges the auth code for a token and persists it.
func (ga *GoogleAuth) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	tok, err := ga.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web: %w", err)
	}
	if err := ga.saveToken(tok); err != nil {
		return nil, err
	}
	return tok, nil
}

// saveToken writes the token next to the other secrets.
func (ga *GoogleAuth) saveToken(token *oauth2.Token) error {
	f, err := os.Create(ga.tokenPath)
	if err != nil {
		return fmt.Errorf("unable to cache oauth token: %w", err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}

// tokenFromFile retrieves a previously cached token.
func (ga *GoogleAuth) tokenFromFile() (*oauth2.Token, error) {
	f, err := os.Open(ga.tokenPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var tok oauth2.Token
	err = json.NewDecoder(f).Decode(&tok)
	return &tok, err
}

// BuildDriveService loads the cached token and builds a Drive API
// service. With debug true each API call is logged.
func (ga *GoogleAuth) BuildDriveService(ctx context.Context, debug bool) (*drivev3.Service, error) {
	tok, err := ga.tokenFromFile()
	if err != nil {
		return nil, fmt.Errorf("no cached token, authorize via /auth/google first: %w", err)
	}
	client := ga.config.Client(ctx, tok)
	if debug {
		client = &http.Client{Transport: &loggingTransport{base: client.Transport}}
	}
	return drivev3.NewService(ctx, option.WithHTTPClient(client))
}
