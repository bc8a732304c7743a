package marrow

import (
	"net/url"
	"strings"
)

// ValidateURL checks that raw is a non-empty, parseable absolute URL with
// scheme exactly http or https. It is shared by the file-mode and
// service-mode entry points and runs before any extraction work begins.
func ValidateURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return Errorf(EINVALID, "URL is required and cannot be empty")
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Errorf(EINVALID, "invalid URL format: %q", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Errorf(EINVALID, "URL must use http:// or https:// (got scheme %q)", u.Scheme)
	}
	return nil
}
