package cache

import (
	"context"
)

// ContentCache keeps rendered page bodies keyed by page id and last edit time, so an unchanged page
// is rendered once.
type ContentCache interface {
	// GetContent returns the cached body and whether it was found.
	GetContent(ctx context.Context, pageID, edited string) (string, bool, error)
	// SetContent stores a rendered body.
	SetContent(ctx context.Context, pageID, edited, content string) error
	// DeleteContent drops every cached body of a page.
	DeleteContent(ctx context.Context, pageID string) error
}

var _ ContentCache = NopCache{}

// NopCache never stores anything.
type NopCache struct{}

func (NopCache) GetContent(context.Context, string, string) (string, bool, error) {
	return "", false, nil
}

func (NopCache) SetContent(context.Context, string, string, string) error {
	return nil
}

func (NopCache) DeleteContent(context.Context, string) error {
	return nil
}
