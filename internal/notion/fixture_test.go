package notion

import (
	"context"
	"errors"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const pageJSON = `{
	"object": "page",
	"id": "7c1f4b1e-9d3a-4f62-8a55-0c4c9e3f2b10",
	"created_time": "2024-03-01T08:30:00.000Z",
	"last_edited_time": "2024-03-02T10:00:00.000Z",
	"last_edited_by": {"object": "user", "id": "u-editor"},
	"cover": {"type": "external", "external": {"url": "https://example.com/cover.png"}},
	"icon": {"type": "emoji", "emoji": "📝"},
	"archived": false,
	"url": "https://www.notion.so/Hello-World-7c1f4b1e9d3a4f628a550c4c9e3f2b10",
	"properties": {
		"Author": {"id": "a", "type": "created_by", "created_by": {
			"object": "user", "id": "u-author", "name": "Ada", "avatar_url": null,
			"type": "person", "person": {"email": "ada@example.com"}}},
		"Created time": {"id": "b", "type": "created_time", "created_time": "2024-03-01T08:30:00.000Z"},
		"Edited time": {"id": "c", "type": "last_edited_time", "last_edited_time": "2024-03-02T10:00:00.000Z"},
		"Slug": {"id": "d", "type": "rich_text", "rich_text": [{"plain_text": "hello-world", "id": "abc"}]},
		"Tag": {"id": "e", "type": "multi_select", "multi_select": [
			{"id": "t1", "name": "go", "color": "blue"},
			{"id": "t2", "name": "sync", "color": "red"}]},
		"Category": {"id": "f", "type": "select", "select": {"id": "c1", "name": "notes", "color": "gray"}},
		"Views": {"id": "g", "type": "number", "number": 42},
		"Draft": {"id": "h", "type": "checkbox", "checkbox": false},
		"Name": {"id": "title", "type": "title", "title": [{"plain_text": "Hello World"}, {"plain_text": " again"}]}
	}
}`

const blocksJSON = `{
	"object": "list",
	"results": [
		{"id": "b1", "type": "heading_1", "heading_1": {"rich_text": [{"plain_text": "Intro"}]}},
		{"id": "b2", "type": "paragraph", "paragraph": {"rich_text": [
			{"plain_text": "Some "},
			{"plain_text": "bold", "annotations": {"bold": true}},
			{"plain_text": " text"}]}},
		{"id": "b3", "type": "unsupported", "unsupported": {}},
		{"id": "b4", "type": "code", "code": {"language": "go", "rich_text": [{"plain_text": "fmt.Println()"}]}}
	],
	"next_cursor": null,
	"has_more": false
}`

// fakeTransport serves canned responses keyed by "METHOD path". Responses registered for the same key
// are served in order, the last one repeating.
type fakeTransport struct {
	responses map[string][]string
	requests  []fakeRequest
}

type fakeRequest struct {
	method string
	path   string
	body   string
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{responses: make(map[string][]string)}
}

func (f *fakeTransport) on(method, path, response string) *fakeTransport {
	key := method + " " + path
	f.responses[key] = append(f.responses[key], response)
	return f
}

func (f *fakeTransport) Send(_ context.Context, method, path string, body []byte) ([]byte, error) {
	f.requests = append(f.requests, fakeRequest{method: method, path: path, body: string(body)})
	key := method + " " + path
	queue := f.responses[key]
	if len(queue) == 0 {
		return nil, errors.Join(ErrTransport, errors.New("no response for "+key))
	}
	res := queue[0]
	if len(queue) > 1 {
		f.responses[key] = queue[1:]
	}
	return []byte(res), nil
}

// withoutProperty removes one property entry from pageJSON.
func withoutProperty(name string) string {
	out, err := sjson.Delete(pageJSON, "properties."+gjson.Escape(name))
	if err != nil {
		panic(err)
	}
	return out
}
