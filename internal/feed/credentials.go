package feed

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	publicKeyPattern = regexp.MustCompile(`^[0-9a-f]{8}$`)
	secretKeyPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
)

// Credentials is the public/secret key pair embedded as URI user-info on
// every authenticated request. Both keys are validated up front: the
// embedding splices them into the URI by string substitution, so a stray
// '@' or ':' would silently corrupt the request.
type Credentials struct {
	PublicKey string
	SecretKey string
}

func NewCredentials(publicKey, secretKey string) (Credentials, error) {
	publicKey = strings.ToLower(strings.TrimSpace(publicKey))
	secretKey = strings.ToLower(strings.TrimSpace(secretKey))

	if !publicKeyPattern.MatchString(publicKey) {
		return Credentials{}, &ConfigError{Reason: "public key must be an 8-hex-digit token"}
	}
	if !secretKeyPattern.MatchString(secretKey) {
		return Credentials{}, &ConfigError{Reason: "secret key must be a canonical GUID"}
	}

	return Credentials{PublicKey: publicKey, SecretKey: secretKey}, nil
}

// Authorize rewrites an unauthenticated URI to carry the key pair as
// user-info: the scheme is stripped off and re-prefixed around the
// credentials, matching what the deployed feed servers expect.
func (c Credentials) Authorize(uri string) (string, error) {
	scheme, rest, found := strings.Cut(uri, "://")
	if !found {
		return "", &ConfigError{Reason: fmt.Sprintf("uri %q has no scheme to splice credentials into", uri)}
	}
	return fmt.Sprintf("%s://%s:%s@%s", scheme, c.PublicKey, c.SecretKey, rest), nil
}
