package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// Redacted replaces every masked value.
const Redacted = "[REDACTED]"

// SensitiveHeaders lists the lowercase header names never logged verbatim.
// The HTTP middleware masks them when dumping request headers and the
// handlers mask attributes with the same names.
var SensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"x-goog-api-key":      true,
	"cookie":              true,
}

// Attribute names whose values are always masked. Device tokens are logged
// under "token" or "tokens" and nowhere else.
var sensitiveFields = []string{"password", "secret", "token", "tokens", "access_token"}

var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	// jwtPattern needs ten characters per segment so version strings pass.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
	// fcmTokenPattern matches FCM registration tokens quoted inside error
	// messages, where the field name gives no hint.
	fcmTokenPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{11,}:APA91[a-zA-Z0-9\-_]{20,}`)
	apiKeyPattern   = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
)

func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := []masq.Option{
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(fcmTokenPattern),
		masq.WithRegex(apiKeyPattern),
	}
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	return masq.New(opts...)
}
