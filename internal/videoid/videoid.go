// Package videoid extracts YouTube video identifiers from operator-supplied URLs.
package videoid

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

// ErrNoVideoID is returned when no video identifier can be found in the input.
// Absence is a normal, reportable outcome, not a fault.
var ErrNoVideoID = errors.New("no video id found in url")

// idshape is the canonical 11-character video identifier alphabet.
var idshape = regexp.MustCompile(`^[0-9A-Za-z_-]{11}$`)

// fallbackPattern matches an identifier following "v=" or a path separator,
// for inputs that do not parse as a URL or use an unrecognized host.
var fallbackPattern = regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})(?:[^0-9A-Za-z_-]|$)`)

// Extract returns the 11-character video identifier contained in raw.
//
// It understands watch?v= query parameters, youtu.be shortlinks, and the
// /embed/, /shorts/, /live/ and /v/ path forms. Malformed or empty input
// never panics; it reports ErrNoVideoID.
func Extract(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrNoVideoID
	}

	if id := extractFromURL(raw); id != "" {
		return id, nil
	}

	// Pattern fallback: anything shaped like an id after v= or a path separator.
	if m := fallbackPattern.FindStringSubmatch(raw); len(m) > 1 {
		return m[1], nil
	}

	return "", ErrNoVideoID
}

func extractFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if u.Scheme == "" {
		// Best effort: treat as https.
		u, err = url.Parse("https://" + raw)
		if err != nil {
			return ""
		}
	}

	host := normalizeHost(u.Host)

	// Handle youtu.be shortlinks
	if host == "youtu.be" {
		return validID(firstPathSegment(u.Path))
	}

	if strings.Contains(host, "youtube.com") {
		// Check for /watch?v= format
		if q := u.Query().Get("v"); q != "" {
			return validID(q)
		}
		for _, prefix := range []string{"/embed/", "/v/", "/shorts/", "/live/"} {
			if strings.HasPrefix(u.Path, prefix) {
				if id := validID(firstPathSegment(strings.TrimPrefix(u.Path, prefix))); id != "" {
					return id
				}
			}
		}
	}

	return ""
}

func validID(s string) string {
	s = strings.TrimSpace(s)
	if idshape.MatchString(s) {
		return s
	}
	return ""
}

func normalizeHost(hostport string) string {
	h := strings.TrimSpace(strings.ToLower(hostport))
	if h == "" {
		return ""
	}
	// url.URL.Host may include port.
	if strings.Contains(h, ":") {
		if parsed, err := url.Parse("//" + h); err == nil {
			if parsed.Hostname() != "" {
				h = parsed.Hostname()
			}
		}
	}
	return strings.TrimSuffix(h, ".")
}

func firstPathSegment(p string) string {
	p = strings.TrimSpace(p)
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return ""
	}
	seg, _, _ := strings.Cut(p, "/")
	return strings.TrimSpace(seg)
}
