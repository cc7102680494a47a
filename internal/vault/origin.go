package vault

import (
	"errors"
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// ErrInvalidURL is returned for addresses that carry no scheme or host.
var ErrInvalidURL = errors.New("invalid url")

// hostProfile is idna.Lookup without the STD3 host rules, so names such as
// my_app.example.com that browsers accept are kept.
var hostProfile = idna.New(idna.MapForLookup(), idna.BidiRule(), idna.StrictDomainName(false))

var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
}

// Origin reduces rawURL to scheme://host[:port]. The host is lowercased and
// converted to its ASCII form; default ports are dropped.
func Origin(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidURL
	}

	scheme := strings.ToLower(u.Scheme)
	host := strings.TrimSuffix(u.Hostname(), ".")
	if ip := net.ParseIP(host); ip != nil {
		host = ip.String()
	} else if host, err = hostProfile.ToASCII(host); err != nil || host == "" {
		return "", ErrInvalidURL
	}
	host = strings.ToLower(host)

	port := u.Port()
	if port == defaultPorts[scheme] {
		port = ""
	}

	if port != "" {
		return scheme + "://" + net.JoinHostPort(host, port), nil
	}
	if strings.Contains(host, ":") {
		return scheme + "://[" + host + "]", nil
	}
	return scheme + "://" + host, nil
}

// MatchOrigin returns the results whose website has the same origin as target.
// Failed results and websites that do not parse are skipped. Subdomains and
// other schemes do not match.
func MatchOrigin(target string, results []Result) ([]Result, error) {
	want, err := Origin(target)
	if err != nil {
		return nil, err
	}

	var out []Result
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		got, err := Origin(r.Credential.Website)
		if err != nil {
			continue
		}
		if got == want {
			out = append(out, r)
		}
	}
	return out, nil
}
