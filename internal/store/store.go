package store

import (
	"context"

	"github.com/emrgen/pagesync/internal/model"
)

type Store interface {
	ContentStore
	MetaStore
	RelationshipStore
	Transaction(ctx context.Context, f func(tx Store) error) error
	Migrate() error
}

type ContentStore interface {
	// CreateContent inserts a content row and fills in its generated ID.
	CreateContent(ctx context.Context, content *model.Content) error
	// GetContentBySlug retrieves the first content row with the given slug.
	GetContentBySlug(ctx context.Context, slug string) (*model.Content, error)
	// ExistsContent reports whether any content row has the given slug.
	ExistsContent(ctx context.Context, slug string) (bool, error)
	// ListContentsBySlug retrieves every content row with the given slug.
	ListContentsBySlug(ctx context.Context, slug string) ([]*model.Content, error)
	// UpdateContent updates title, modified time and text of a content row.
	UpdateContent(ctx context.Context, content *model.Content) error
}

type MetaStore interface {
	// CreateMeta inserts a meta row and fills in its generated ID.
	CreateMeta(ctx context.Context, meta *model.Meta) error
	// GetMetaByName retrieves the first meta row with the given name.
	GetMetaByName(ctx context.Context, name string) (*model.Meta, error)
	// IncrementMetaCount adds one to a meta row's usage counter.
	IncrementMetaCount(ctx context.Context, id uint) error
	// ListMetas retrieves the meta rows of one type, or of every type when metaType is empty.
	ListMetas(ctx context.Context, metaType string) ([]*model.Meta, error)
}

type RelationshipStore interface {
	// CreateRelationship links a content row to a meta row.
	CreateRelationship(ctx context.Context, rel *model.Relationship) error
	// ListRelationships retrieves the links of a content row.
	ListRelationships(ctx context.Context, contentID uint) ([]*model.Relationship, error)
}
