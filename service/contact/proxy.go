package contact

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"golang.org/x/net/proxy"

	"discord-webhook-relay/config"
)

func createProxyTransport(cfg *config.Config) (*http.Transport, error) {
	proxyURL, err := url.Parse(cfg.ProxyURL)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy URL '%s': %w", cfg.ProxyURL, err)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyType == "socks5" {
		var auth *proxy.Auth
		if cfg.ProxyUser != "" && cfg.ProxyPass != "" {
			auth = &proxy.Auth{
				User:     cfg.ProxyUser,
				Password: cfg.ProxyPass,
			}
		}

		dialer, err := proxy.SOCKS5("tcp", proxyURL.Host, auth, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("failed to create SOCKS5 dialer: %w", err)
		}

		// The SOCKS5 dialer replaces any environment proxy.
		transport.Proxy = nil
		if cd, ok := dialer.(proxy.ContextDialer); ok {
			transport.DialContext = cd.DialContext
		} else {
			transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			}
		}
		return transport, nil
	}

	if cfg.ProxyUser != "" && cfg.ProxyPass != "" {
		proxyURL.User = url.UserPassword(cfg.ProxyUser, cfg.ProxyPass)
	}

	transport.Proxy = http.ProxyURL(proxyURL)
	return transport, nil
}
