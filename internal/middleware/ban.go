package middleware

import (
	"contacts-web-server/config"
	"contacts-web-server/internal/util"
	"fmt"
	"net/http"
	"net/netip"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// BanList : запрещённые сети и шаблоны user-agent
type BanList struct {
	networks   []netip.Prefix
	userAgents []*regexp.Regexp
}

// NewBanList : шаблоны user-agent без учёта регистра
func NewBanList(cfg *config.SecurityConfig) (*BanList, error) {
	list := &BanList{}

	networks, err := ParseNetworks(cfg.BannedNetworks)
	if err != nil {
		return nil, err
	}
	list.networks = networks

	for _, raw := range cfg.BannedUserAgents {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		pattern, err := regexp.Compile("(?i)" + raw)
		if err != nil {
			return nil, fmt.Errorf("некорректный шаблон user-agent %q: %w", raw, err)
		}
		list.userAgents = append(list.userAgents, pattern)
	}

	return list, nil
}

func (b *BanList) Banned(r *http.Request) bool {
	if addr, err := netip.ParseAddr(ClientIP(r)); err == nil {
		if containsAddr(b.networks, addr.Unmap()) {
			return true
		}
	}

	userAgent := r.UserAgent()
	for _, pattern := range b.userAgents {
		if pattern.MatchString(userAgent) {
			return true
		}
	}
	return false
}

func (b *BanList) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if b.Banned(r) {
			zap.L().Info("запрос заблокирован",
				zap.String("ip", ClientIP(r)),
				zap.String("user_agent", r.UserAgent()))
			util.HandleError(w, "You are banned", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ParseNetworks : одиночный адрес трактуется как сеть /32 (/128)
func ParseNetworks(raw []string) ([]netip.Prefix, error) {
	networks := make([]netip.Prefix, 0, len(raw))
	for _, entry := range raw {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, fmt.Errorf("некорректная сеть %q: %w", entry, err)
			}
			networks = append(networks, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, fmt.Errorf("некорректный адрес %q: %w", entry, err)
		}
		networks = append(networks, netip.PrefixFrom(addr.Unmap(), addr.Unmap().BitLen()))
	}
	return networks, nil
}

func containsAddr(networks []netip.Prefix, addr netip.Addr) bool {
	for _, network := range networks {
		if network.Contains(addr) {
			return true
		}
	}
	return false
}
