package notion

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const (
	DefaultBaseURL = "https://api.notion.com/v1/"
	DefaultVersion = "2022-06-28"
)

// Transport sends one request to the remote API and returns the raw JSON response.
type Transport interface {
	Send(ctx context.Context, method, path string, body []byte) ([]byte, error)
}

// Options configures an HTTPTransport.
type Options struct {
	Token   string
	BaseURL string
	Version string
	Timeout time.Duration
}

var _ Transport = (*HTTPTransport)(nil)

// HTTPTransport talks to the remote API over HTTPS with a bearer token.
type HTTPTransport struct {
	client  *http.Client
	token   string
	baseURL string
	version string
}

// NewHTTPTransport creates a transport from explicit options.
func NewHTTPTransport(opts Options) *HTTPTransport {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	version := opts.Version
	if version == "" {
		version = DefaultVersion
	}

	return &HTTPTransport{
		client:  &http.Client{Timeout: opts.Timeout},
		token:   opts.Token,
		baseURL: baseURL,
		version: version,
	}
}

// Send issues the request. A GET carries the top-level fields of body as query parameters, so
// paginated GET resources still receive start_cursor and page_size.
func (t *HTTPTransport) Send(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var reader io.Reader
	target := t.baseURL + path
	if method == http.MethodGet {
		if query := queryParams(body); query != "" {
			target += "?" + query
		}
	} else if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Authorization", "Bearer "+t.token)
	req.Header.Set("Notion-Version", t.version)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	res, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}
	logrus.Debugf("request time: %s %s: %v", method, path, time.Since(start))

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		message := gjson.GetBytes(data, "message").String()
		if message == "" {
			message = http.StatusText(res.StatusCode)
		}
		return nil, fmt.Errorf("%w: %s %s: %d %s", ErrTransport, method, path, res.StatusCode, message)
	}

	return data, nil
}

// queryParams encodes the scalar top-level fields of a JSON object as a query string.
func queryParams(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	values := url.Values{}
	gjson.ParseBytes(body).ForEach(func(key, value gjson.Result) bool {
		if !value.IsObject() && !value.IsArray() {
			values.Set(key.String(), value.String())
		}
		return true
	})
	return values.Encode()
}
