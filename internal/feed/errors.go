package feed

import "fmt"

// ConfigError reports malformed client configuration (base URL or key pair).
// It aborts a run before any request is issued; a malformed credential must
// never reach the wire.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "feed configuration: " + e.Reason
}

// FetchError reports a network, status, or decode failure talking to the
// feed. URI is the unauthenticated form so credentials never leak into logs.
type FetchError struct {
	Op  string
	URI string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URI, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// UnsupportedFormatError is a caller error, not a network error: the client
// only speaks the structured-markup and object-notation encodings.
type UnsupportedFormatError struct {
	Format Format
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported wire format %q", string(e.Format))
}
