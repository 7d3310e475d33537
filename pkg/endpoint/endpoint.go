// Package endpoint parses free-form sidecar address strings.
//
// The accepted grammar is looser than net/url: the scheme is optional, the
// port is optional, the host may be an IPv6 literal (bracketed or bare), and
// a path suffix after the authority is tolerated and ignored. Shapes like
// "localhost:3500", ":3500/v1.0/state" and "[::1]:50001" must all parse,
// which is why this is not url.Parse.
package endpoint

import (
	"net"
	"strconv"
	"strings"

	sdkerrors "github.com/stackmesh/runtime-sdk-go/pkg/errors"
)

// Endpoint is the parsed form of an address string.
type Endpoint struct {
	Scheme string
	Host   string
	Port   int
}

// String renders the endpoint back into scheme://host:port form, bracketing
// IPv6 hosts.
func (e Endpoint) String() string {
	host := e.Host
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	return e.Scheme + "://" + host + ":" + strconv.Itoa(e.Port)
}

const (
	defaultScheme = "http"
	defaultHost   = "localhost"

	defaultPortHTTP  = 80
	defaultPortHTTPS = 443
)

// authorityMatch is the result of one authority pattern: the host text (may
// be empty, meaning "keep the default") and the port text (may be empty,
// meaning "keep the default").
type authorityMatch struct {
	host string
	port string
}

// authorityMatcher recognizes one shape of path-stripped authority text.
// Matchers are tried in order; the first hit wins.
type authorityMatcher func(body string) (authorityMatch, bool)

var authorityMatchers = []authorityMatcher{
	matchHostAndPort,
	matchBareHost,
	matchBracketed,
	matchBareIPv6,
}

// Parse parses an address string into its scheme, host and port.
//
// Defaults when the address omits them: scheme "http", host "localhost",
// port 80 (443 once an "https" scheme is seen). The path suffix, if any, is
// stripped before the authority is interpreted.
func Parse(address string) (Endpoint, error) {
	ep := Endpoint{Scheme: defaultScheme, Host: defaultHost, Port: defaultPortHTTP}

	body := address
	if scheme, rest, ok := strings.Cut(address, "://"); ok {
		ep.Scheme = scheme
		if scheme == "https" {
			ep.Port = defaultPortHTTPS
		}
		body = rest
	}

	// One consistent rule for every shape: anything from the first "/" on
	// is a path, never part of the host or port.
	body = stripPath(body)

	match, ok := matchAuthority(body)
	if !ok {
		return Endpoint{}, sdkerrors.InvalidAddress(address)
	}

	if match.host != "" {
		ep.Host = match.host
	}
	if match.port != "" {
		port, err := strconv.Atoi(match.port)
		if err != nil || port < 0 || port > 65535 {
			return Endpoint{}, sdkerrors.InvalidPort(match.port)
		}
		ep.Port = port
	}

	return ep, nil
}

// matchAuthority runs the matchers in order and returns the first hit.
func matchAuthority(body string) (authorityMatch, bool) {
	for _, matcher := range authorityMatchers {
		if match, ok := matcher(body); ok {
			return match, true
		}
	}
	return authorityMatch{}, false
}

// matchHostAndPort recognizes "host:port" and ":port" (exactly one colon).
func matchHostAndPort(body string) (authorityMatch, bool) {
	if strings.Count(body, ":") != 1 {
		return authorityMatch{}, false
	}
	host, port, _ := strings.Cut(body, ":")
	return authorityMatch{host: host, port: port}, true
}

// matchBareHost recognizes a host with no port at all, including "".
func matchBareHost(body string) (authorityMatch, bool) {
	if strings.Contains(body, ":") {
		return authorityMatch{}, false
	}
	return authorityMatch{host: body}, true
}

// matchBracketed recognizes bracketed IPv6 literals: "[::1]:50001" and
// "[::1]".
func matchBracketed(body string) (authorityMatch, bool) {
	if !strings.HasPrefix(body, "[") {
		return authorityMatch{}, false
	}
	if host, port, found := strings.Cut(body, "]:"); found {
		return authorityMatch{host: strings.TrimPrefix(host, "["), port: port}, true
	}
	if strings.HasSuffix(body, "]") {
		return authorityMatch{host: strings.TrimSuffix(strings.TrimPrefix(body, "["), "]")}, true
	}
	return authorityMatch{}, false
}

// matchBareIPv6 recognizes unbracketed IPv6 literals such as "::1". Without
// this check every multi-colon string would pass as a host, and shapes like
// "a:b:c:d" must be rejected instead.
func matchBareIPv6(body string) (authorityMatch, bool) {
	ip := net.ParseIP(body)
	if ip == nil || ip.To4() != nil {
		return authorityMatch{}, false
	}
	return authorityMatch{host: body}, true
}

// stripPath drops everything from the first "/" onward.
func stripPath(s string) string {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		return s[:i]
	}
	return s
}
