package restclient

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-cleanhttp"
)

// dialerKeepAlive matches the keep-alive period cleanhttp configures on
// its default dialer.
const dialerKeepAlive = 30 * time.Second

// newHTTPClient assembles the client for a single exchange. Every call
// gets a fresh non-pooled transport, so no connection state is shared
// between requests.
func (b *RequestBuilder) newHTTPClient() (*http.Client, error) {
	transport := cleanhttp.DefaultTransport()
	transport.DialContext = (&net.Dialer{
		Timeout:   b.connectTimeout,
		KeepAlive: dialerKeepAlive,
	}).DialContext

	if b.proxyURL != "" {
		proxy, err := url.Parse(b.proxyURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidProxyURL, b.proxyURL)
		}

		transport.Proxy = http.ProxyURL(proxy)
	}

	if b.clientCert != nil || b.skipTLSVerify {
		tlsConfig := &tls.Config{MinVersion: tls.VersionTLS12}

		if b.clientCert != nil {
			tlsConfig.Certificates = []tls.Certificate{*b.clientCert}
		}

		if b.skipTLSVerify {
			tlsConfig.InsecureSkipVerify = true // #nosec G402 -- Verification is only skipped on explicit request
		}

		transport.TLSClientConfig = tlsConfig
	}

	return &http.Client{
		Transport: transport,
		Timeout:   b.readTimeout,
	}, nil
}
