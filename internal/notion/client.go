package notion

import (
	"context"
)

// Client issues typed requests against the remote API.
type Client struct {
	transport Transport
	pageSize  int
}

// NewClient creates a client. A pageSize of zero keeps DefaultPageSize.
func NewClient(transport Transport, pageSize int) *Client {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Client{transport: transport, pageSize: pageSize}
}

// Query starts a request builder for resource.
func (c *Client) Query(resource Resource) *Builder {
	return NewBuilder(c.transport, resource).Limit(c.pageSize)
}

// Page fetches a single page.
func (c *Client) Page(ctx context.Context, id string) (*Page, error) {
	return Execute[Page](ctx, c.Query(Pages(id)))
}

// Blocks fetches every child of a page or block, following next_cursor until the last result page.
func (c *Client) Blocks(ctx context.Context, id string) (*BlockList, error) {
	b := c.Query(Blocks(id))
	all := &BlockList{}
	for {
		list, err := Execute[BlockList](ctx, b)
		if err != nil {
			return nil, err
		}
		all.Blocks = append(all.Blocks, list.Blocks...)
		if !list.HasMore || list.NextCursor == "" {
			return all, nil
		}
		b.Cursor(list.NextCursor)
	}
}

// User fetches a workspace user.
func (c *Client) User(ctx context.Context, id string) (*User, error) {
	return Execute[User](ctx, c.Query(Users(id)))
}

// QueryAll runs a database query and follows next_cursor until the last result page, calling fn
// for each one.
func (c *Client) QueryAll(ctx context.Context, b *Builder, fn func(*Database) error) error {
	for {
		db, err := Execute[Database](ctx, b)
		if err != nil {
			return err
		}
		if err := fn(db); err != nil {
			return err
		}
		if !db.HasMore || db.NextCursor == "" {
			return nil
		}
		b.Cursor(db.NextCursor)
	}
}
