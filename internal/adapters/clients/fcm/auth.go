package fcm

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/kimneyapti/notifier/internal/platform/config"
)

// messagingScope is the OAuth2 scope required by the send endpoint.
const messagingScope = "https://www.googleapis.com/auth/firebase.messaging"

// NewTransport returns the round tripper used for FCM calls. With
// config.PushAuthGoogle it attaches bearer tokens from the application
// default credentials; with config.PushAuthNone it sends unauthenticated
// requests, for emulators and local stubs.
func NewTransport(ctx context.Context, auth string) (http.RoundTripper, error) {
	switch auth {
	case config.PushAuthNone:
		return http.DefaultTransport, nil
	case config.PushAuthGoogle:
		ts, err := google.DefaultTokenSource(ctx, messagingScope)
		if err != nil {
			return nil, fmt.Errorf("loading default credentials: %w", err)
		}
		return &oauth2.Transport{Source: ts, Base: http.DefaultTransport}, nil
	default:
		return nil, fmt.Errorf("unsupported push auth mode %q", auth)
	}
}
