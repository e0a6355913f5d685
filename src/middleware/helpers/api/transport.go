package api

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"

	helpers "superbox/src/middleware/helpers"
)

const DefaultTimeoutSeconds = 30

// Transport is the raw device conversation. Implementations keep cookies
// between calls.
type Transport interface {
	Get(path string, params url.Values, headers http.Header) (*Response, error)
	PostForm(path string, form url.Values, headers http.Header) (*Response, error)
}

type TLSTransport struct {
	baseURL string
	client  tls_client.HttpClient
}

func NewTLSTransport(baseURL string, timeoutSeconds int) (*TLSTransport, error) {
	if timeoutSeconds <= 0 {
		timeoutSeconds = DefaultTimeoutSeconds
	}

	client, err := CreateTLSClient(timeoutSeconds)
	if err != nil {
		return nil, fmt.Errorf("failed to create request client: %w", err)
	}

	return &TLSTransport{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}, nil
}

func (t *TLSTransport) Get(path string, params url.Values, headers http.Header) (*Response, error) {
	target := t.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequest(http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header = baseHeaders(headers)

	return t.do(req)
}

func (t *TLSTransport) PostForm(path string, form url.Values, headers http.Header) (*Response, error) {
	req, err := http.NewRequest(http.MethodPost, t.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header = baseHeaders(headers)
	if req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	return t.do(req)
}

func (t *TLSTransport) do(req *http.Request) (*Response, error) {
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

func baseHeaders(extra http.Header) http.Header {
	header := http.Header{
		"User-Agent":       {helpers.UserAgent},
		"Accept":           {helpers.Accept},
		"Accept-Language":  {"en-US,en;q=0.9"},
		"X-Requested-With": {"XMLHttpRequest"},
		"Header-Order:": {
			"Host", "Content-Length", "Accept", "X-Requested-With", "User-Agent", "Content-Type", "Referer", "Accept-Encoding", "Accept-Language", "Cookie",
		},
	}
	for key, values := range extra {
		header[http.CanonicalHeaderKey(key)] = values
	}
	return header
}
