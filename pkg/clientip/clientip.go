package clientip

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Config lists the proxies whose forwarding headers are honored.
// Entries are addresses or CIDR prefixes.
type Config struct {
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// Resolver finds the client address of a request. Forwarding headers are
// read only when the direct peer is a trusted proxy.
type Resolver struct {
	trusted []netip.Prefix
}

// NewResolver parses cfg. An empty list trusts no proxy, so only
// RemoteAddr is used.
func NewResolver(cfg Config) (*Resolver, error) {
	r := &Resolver{}
	for _, entry := range cfg.TrustedProxies {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.Contains(entry, "/") {
			p, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidProxy, entry)
			}
			r.trusted = append(r.trusted, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidProxy, entry)
		}
		addr = addr.Unmap()
		r.trusted = append(r.trusted, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return r, nil
}

// FromRequest returns the normalized client IP of req, or "" when nothing
// parses. For a trusted peer, X-Forwarded-For is walked from the right and
// the first untrusted hop wins; X-Real-IP is the fallback.
func (r *Resolver) FromRequest(req *http.Request) string {
	peer, ok := parseAddr(remoteHost(req.RemoteAddr))
	if !ok {
		return ""
	}
	if !r.isTrusted(peer) {
		return peer.String()
	}

	if xff := req.Header.Values("X-Forwarded-For"); len(xff) > 0 {
		hops := strings.Split(strings.Join(xff, ","), ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop, ok := parseAddr(hops[i])
			if !ok {
				break
			}
			if !r.isTrusted(hop) {
				return hop.String()
			}
		}
	}

	if hop, ok := parseAddr(req.Header.Get("X-Real-IP")); ok {
		return hop.String()
	}
	return peer.String()
}

func (r *Resolver) isTrusted(addr netip.Addr) bool {
	for _, p := range r.trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

func remoteHost(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}

func parseAddr(s string) (netip.Addr, bool) {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}
