package reel

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Post path markers recognized in short-form video URLs.
var postMarkers = map[string]bool{
	"reel":  true,
	"reels": true,
	"p":     true,
}

var (
	rePostPath = regexp.MustCompile(`/(reel|reels|p)/([^/?#]+)`)
	rePathSafe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// ExtractPostID derives the post identifier from the URL path. The identifier
// keys every output directory for the run, so it must be URL-path-safe.
// Returns ErrInvalidURL when no recognizable identifier segment exists.
func ExtractPostID(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, rawURL)
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, part := range parts {
		if postMarkers[part] && i+1 < len(parts) {
			if id := parts[i+1]; rePathSafe.MatchString(id) {
				return id, nil
			}
		}
	}

	if m := rePostPath.FindStringSubmatch(u.Path); m != nil && rePathSafe.MatchString(m[2]) {
		return m[2], nil
	}

	return "", fmt.Errorf("%w: no post identifier in %s", ErrInvalidURL, rawURL)
}
