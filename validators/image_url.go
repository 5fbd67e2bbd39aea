package validators

import (
	"fmt"
	"net/url"
	"strings"
)

// ImageURLValidator accepts http(s) URLs, optionally limited to a set of
// trusted hosts. A host entry also admits its subdomains.
type ImageURLValidator struct {
	TrustedHosts []string
}

func (v ImageURLValidator) Validate(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("invalid image url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("image url scheme %q not allowed", u.Scheme)
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return fmt.Errorf("image url has no host")
	}
	if len(v.TrustedHosts) == 0 {
		return nil
	}
	for _, trusted := range v.TrustedHosts {
		trusted = strings.ToLower(trusted)
		if host == trusted || strings.HasSuffix(host, "."+trusted) {
			return nil
		}
	}
	return fmt.Errorf("image host %q is not trusted", host)
}
