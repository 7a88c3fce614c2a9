package notion

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// DefaultPageSize is the page size sent when Limit is never called.
const DefaultPageSize = 100

// ResourceKind identifies the remote endpoint a request targets.
type ResourceKind int

const (
	ResourceDatabase ResourceKind = iota
	ResourcePage
	ResourceBlocks
	ResourceUser
)

// Resource is a request target: a resource kind plus the id it is keyed by.
type Resource struct {
	Kind ResourceKind
	ID   string
}

func Databases(id string) Resource { return Resource{Kind: ResourceDatabase, ID: id} }
func Pages(id string) Resource     { return Resource{Kind: ResourcePage, ID: id} }
func Blocks(id string) Resource    { return Resource{Kind: ResourceBlocks, ID: id} }
func Users(id string) Resource     { return Resource{Kind: ResourceUser, ID: id} }

// Path returns the API path relative to the base URL.
func (r Resource) Path() string {
	switch r.Kind {
	case ResourceDatabase:
		return "databases/" + r.ID + "/query"
	case ResourcePage:
		return "pages/" + r.ID
	case ResourceBlocks:
		return "blocks/" + r.ID + "/children"
	default:
		return "users/" + r.ID
	}
}

// Paginated reports whether the resource accepts start_cursor and page_size.
func (r Resource) Paginated() bool {
	return r.Kind == ResourceDatabase || r.Kind == ResourceBlocks
}

// Method returns the HTTP method used for the resource.
func (r Resource) Method() string {
	if r.Kind == ResourceDatabase {
		return http.MethodPost
	}
	return http.MethodGet
}

// Direction is a sort direction.
type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

type sortKey struct {
	field     string
	direction Direction
}

// Builder accumulates filter, sorts and pagination for one request.
type Builder struct {
	transport Transport
	resource  Resource
	filter    Filter
	sorts     []sortKey
	cursor    string
	pageSize  int
}

// NewBuilder starts a request for resource sent through transport.
func NewBuilder(transport Transport, resource Resource) *Builder {
	return &Builder{
		transport: transport,
		resource:  resource,
		pageSize:  DefaultPageSize,
	}
}

// Resource returns the request target.
func (b *Builder) Resource() Resource {
	return b.resource
}

// Filter sets the filter, or ANDs it onto the filter already set.
func (b *Builder) Filter(filter Filter) *Builder {
	b.filter = b.filter.And(filter)
	return b
}

// Sort appends a sort key.
func (b *Builder) Sort(field string, direction Direction) *Builder {
	b.sorts = append(b.sorts, sortKey{field: field, direction: direction})
	return b
}

// Cursor sets the pagination cursor returned by a previous query.
func (b *Builder) Cursor(cursor string) *Builder {
	b.cursor = cursor
	return b
}

// Limit sets the page size.
func (b *Builder) Limit(size int) *Builder {
	b.pageSize = size
	return b
}

// Body serializes the request. Keys appear in the order start_cursor, filter, sorts, page_size and
// only when set; page_size is always present.
func (b *Builder) Body() ([]byte, error) {
	body := []byte("{}")
	var err error

	if b.cursor != "" {
		if body, err = sjson.SetBytes(body, "start_cursor", b.cursor); err != nil {
			return nil, err
		}
	}

	filter, err := b.filter.JSON()
	if err != nil {
		return nil, err
	}
	if filter != "" {
		if body, err = sjson.SetRawBytes(body, "filter", []byte(filter)); err != nil {
			return nil, err
		}
	}

	if len(b.sorts) > 0 {
		entries := make([][]byte, 0, len(b.sorts))
		for _, s := range b.sorts {
			entry, err := sjson.SetBytes([]byte("{}"), gjson.Escape(s.field), string(s.direction))
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
		}
		sorts := append(append([]byte("["), bytes.Join(entries, []byte(","))...), ']')
		if body, err = sjson.SetRawBytes(body, "sorts", sorts); err != nil {
			return nil, err
		}
	}

	return sjson.SetBytes(body, "page_size", b.pageSize)
}

type decoder interface {
	FromJSON(node gjson.Result) error
}

// FromJSON is implemented once per result type to build it from a raw response.
type FromJSON[T any] interface {
	*T
	FromJSON(node gjson.Result) error
}

// Execute sends the builder's request and decodes the response into T.
func Execute[T any, P FromJSON[T]](ctx context.Context, b *Builder) (*T, error) {
	var body []byte
	if b.resource.Paginated() {
		var err error
		if body, err = b.Body(); err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
	}

	data, err := b.transport.Send(ctx, b.resource.Method(), b.resource.Path(), body)
	if err != nil {
		return nil, err
	}

	out := new(T)
	if err := P(out).FromJSON(gjson.ParseBytes(data)); err != nil {
		return nil, err
	}

	return out, nil
}
