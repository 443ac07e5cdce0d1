package client

import (
	"compress/gzip"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const userAgent = "salaryforecast/1.0 (+https://github.com/fr4nk3nst1ner/salaryforecast)"

// CreateProxyHTTPClient creates an HTTP client with proxy support.
// An empty or unparsable proxyURL yields a direct client.
func CreateProxyHTTPClient(proxyURL string) *http.Client {
	if proxyURL == "" {
		return CreateHTTPClient()
	}

	proxy, err := url.Parse(proxyURL)
	if err != nil || proxy.Host == "" {
		return CreateHTTPClient()
	}

	transport := newTransport()
	transport.Proxy = http.ProxyURL(proxy)

	return &http.Client{Transport: transport}
}

// CreateHTTPClient creates a standard HTTP client. Proxy environment
// variables are ignored and no client timeout is set.
func CreateHTTPClient() *http.Client {
	return &http.Client{Transport: newTransport()}
}

func newTransport() *http.Transport {
	return &http.Transport{
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		DisableCompression:  false,
		MaxIdleConnsPerHost: 10,
		ForceAttemptHTTP2:   true,
	}
}

// GetDefaultHeaders returns the headers sent with every data request
func GetDefaultHeaders() http.Header {
	headers := http.Header{}
	headers.Set("User-Agent", userAgent)
	headers.Set("Accept", "application/json, text/html;q=0.9, */*;q=0.8")
	headers.Set("Accept-Encoding", "gzip")
	headers.Set("Accept-Language", "en-US,en;q=0.9")
	return headers
}

// ReadResponseBody reads the response body, handling gzip compression if necessary
func ReadResponseBody(resp *http.Response) ([]byte, error) {
	var reader io.ReadCloser
	var err error

	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		reader, err = gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %v", err)
		}
		defer reader.Close()
	default:
		reader = resp.Body
	}

	return io.ReadAll(reader)
}
