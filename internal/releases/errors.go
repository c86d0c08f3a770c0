package releases

import (
	"fmt"

	"github.com/tdl-project/tdl/internal/ports"
)

// NoReleaseError means the authority has no release marked "latest" for
// the port. This is an authoritative answer, not a transient fault, and
// it is the only failure the cache memoizes.
type NoReleaseError struct {
	Port ports.Port
}

func (e *NoReleaseError) Error() string {
	return fmt.Sprintf("no latest release was found for %s", e.Port)
}

// VersionError means the release tag did not contain a recognizable
// version.
type VersionError struct {
	Tag  string
	Port ports.Port
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("could not parse a version from tag '%s' for %s", e.Tag, e.Port)
}

// TransportError wraps a network or IO failure reaching the authority.
// Never cached; the next invocation retries.
type TransportError struct {
	Wrapped error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("release lookup failed: %v", e.Wrapped)
}

func (e *TransportError) Unwrap() error { return e.Wrapped }

// ResponseError means the authority answered but the response could not
// be interpreted as a release document.
type ResponseError struct {
	Wrapped error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("could not interpret release response: %v", e.Wrapped)
}

func (e *ResponseError) Unwrap() error { return e.Wrapped }
