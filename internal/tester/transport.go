package tester

import (
	"context"
	"fmt"
	"sync"

	"github.com/emrgen/pagesync/internal/notion"
)

// Request is one call recorded by Transport.
type Request struct {
	Method string
	Path   string
	Body   string
}

// Transport serves canned JSON keyed by "METHOD path". Responses registered for the same key are
// served in order, the last one repeating.
type Transport struct {
	mu        sync.Mutex
	responses map[string][]string
	requests  []Request
}

var _ notion.Transport = (*Transport)(nil)

func NewTransport() *Transport {
	return &Transport{responses: make(map[string][]string)}
}

func (t *Transport) On(method, path, response string) *Transport {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := method + " " + path
	t.responses[key] = append(t.responses[key], response)
	return t
}

func (t *Transport) Send(_ context.Context, method, path string, body []byte) ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.requests = append(t.requests, Request{Method: method, Path: path, Body: string(body)})
	key := method + " " + path
	queue := t.responses[key]
	if len(queue) == 0 {
		return nil, fmt.Errorf("%w: no response for %s", notion.ErrTransport, key)
	}
	res := queue[0]
	if len(queue) > 1 {
		t.responses[key] = queue[1:]
	}
	return []byte(res), nil
}

func (t *Transport) Requests() []Request {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]Request(nil), t.requests...)
}
