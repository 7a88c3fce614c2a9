package store

import (
	"context"

	"github.com/emrgen/pagesync/internal/model"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db: db,
	}
}

var _ Store = (*GormStore)(nil)

type GormStore struct {
	db *gorm.DB
}

func (g *GormStore) CreateContent(ctx context.Context, content *model.Content) error {
	return wrap(g.db.WithContext(ctx).Create(content).Error)
}

func (g *GormStore) GetContentBySlug(ctx context.Context, slug string) (*model.Content, error) {
	var content model.Content
	err := g.db.WithContext(ctx).Where("slug = ?", slug).Order("cid").First(&content).Error
	if err != nil {
		return nil, notFound(err, ErrContentNotFound)
	}
	return &content, nil
}

func (g *GormStore) ExistsContent(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&model.Content{}).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		return false, wrap(err)
	}
	return count > 0, nil
}

func (g *GormStore) ListContentsBySlug(ctx context.Context, slug string) ([]*model.Content, error) {
	var contents []*model.Content
	err := g.db.WithContext(ctx).Where("slug = ?", slug).Order("cid").Find(&contents).Error
	return contents, wrap(err)
}

// UpdateContent writes only the fields a re-sync changes.
func (g *GormStore) UpdateContent(ctx context.Context, content *model.Content) error {
	return wrap(g.db.WithContext(ctx).Model(&model.Content{}).Where("cid = ?", content.ID).Updates(map[string]any{
		"title":    content.Title,
		"modified": content.Modified,
		"text":     content.Text,
	}).Error)
}

func (g *GormStore) CreateMeta(ctx context.Context, meta *model.Meta) error {
	return wrap(g.db.WithContext(ctx).Create(meta).Error)
}

func (g *GormStore) GetMetaByName(ctx context.Context, name string) (*model.Meta, error) {
	var meta model.Meta
	err := g.db.WithContext(ctx).Where("name = ?", name).Order("mid").First(&meta).Error
	if err != nil {
		return nil, notFound(err, ErrMetaNotFound)
	}
	return &meta, nil
}

func (g *GormStore) IncrementMetaCount(ctx context.Context, id uint) error {
	return wrap(g.db.WithContext(ctx).Model(&model.Meta{}).Where("mid = ?", id).
		UpdateColumn("count", gorm.Expr("count + ?", 1)).Error)
}

func (g *GormStore) ListMetas(ctx context.Context, metaType string) ([]*model.Meta, error) {
	var metas []*model.Meta
	query := g.db.WithContext(ctx).Order("mid")
	if metaType != "" {
		query = query.Where("type = ?", metaType)
	}
	err := query.Find(&metas).Error
	return metas, wrap(err)
}

func (g *GormStore) CreateRelationship(ctx context.Context, rel *model.Relationship) error {
	return wrap(g.db.WithContext(ctx).Create(rel).Error)
}

func (g *GormStore) ListRelationships(ctx context.Context, contentID uint) ([]*model.Relationship, error) {
	var rels []*model.Relationship
	err := g.db.WithContext(ctx).Where("cid = ?", contentID).Order("mid").Find(&rels).Error
	return rels, wrap(err)
}

func (g *GormStore) Migrate() error {
	logrus.Infof("migrating tables")
	return wrap(model.Migrate(g.db))
}

// Transaction runs f against a store bound to one database transaction. Any error returned by f
// rolls back every write made through tx.
func (g *GormStore) Transaction(ctx context.Context, f func(tx Store) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return f(&GormStore{db: tx})
	})
}
