package auth

import (
	"net/url"
	"strings"
)

// SafeRedirect validates a client-supplied post-login redirect target against
// the open-redirect policy: only http/https targets on the current host are
// honored, everything else falls back to home. Relative paths are always on
// the current host; scheme-relative "//host/..." targets are not.
func SafeRedirect(target, host string) string {
	const home = "/"

	if target == "" {
		return home
	}

	u, err := url.Parse(target)
	if err != nil {
		return home
	}

	if u.Scheme == "" && u.Host == "" {
		// relative path; forbid anything that could re-parse as
		// scheme-relative on the client
		if strings.HasPrefix(target, "/") && !strings.HasPrefix(target, "//") {
			return target
		}
		return home
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return home
	}
	if !strings.EqualFold(u.Host, host) {
		return home
	}
	return target
}
