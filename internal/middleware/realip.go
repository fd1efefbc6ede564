package middleware

import (
	"net/http"
	"net/netip"
	"strings"
)

// TrustedProxies : сети обратных прокси, которым разрешено сообщать адрес клиента
type TrustedProxies struct {
	networks []netip.Prefix
}

func NewTrustedProxies(networks []string) (*TrustedProxies, error) {
	parsed, err := ParseNetworks(networks)
	if err != nil {
		return nil, err
	}
	return &TrustedProxies{networks: parsed}, nil
}

// Middleware : заголовки X-Forwarded-For и X-Real-IP учитываются только от доверенного прокси,
// иначе адресом клиента остаётся адрес сокета
func (p *TrustedProxies) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ip, ok := p.forwardedFor(r); ok {
			r.RemoteAddr = ip
		}
		next.ServeHTTP(w, r)
	})
}

func (p *TrustedProxies) forwardedFor(r *http.Request) (string, bool) {
	if !p.trusted(ClientIP(r)) {
		return "", false
	}

	// справа налево: последний адрес, добавленный не нашим прокси
	hops := strings.Split(strings.Join(r.Header.Values("X-Forwarded-For"), ","), ",")
	var leftmost string
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		addr, err := netip.ParseAddr(hop)
		if err != nil {
			break
		}
		leftmost = addr.Unmap().String()
		if !containsAddr(p.networks, addr.Unmap()) {
			return leftmost, true
		}
	}
	if leftmost != "" {
		return leftmost, true
	}

	if addr, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get("X-Real-IP"))); err == nil {
		return addr.Unmap().String(), true
	}
	return "", false
}

func (p *TrustedProxies) trusted(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	return err == nil && containsAddr(p.networks, addr.Unmap())
}
