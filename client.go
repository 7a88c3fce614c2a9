package pagesync

import (
	"context"
	"io"

	"github.com/emrgen/pagesync/internal/cache"
	"github.com/emrgen/pagesync/internal/compress"
	"github.com/emrgen/pagesync/internal/config"
	"github.com/emrgen/pagesync/internal/notion"
	"github.com/emrgen/pagesync/internal/service"
	"github.com/emrgen/pagesync/internal/store"
	redis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Client wires the remote API, the blog database and the content cache together.
type Client interface {
	io.Closer
	Notion() *notion.Client
	Store() store.Store
	Articles() *service.ArticleService
	Syncer() *service.Syncer
}

type client struct {
	db       *gorm.DB
	redis    *redis.Client
	notion   *notion.Client
	store    store.Store
	articles *service.ArticleService
	syncer   *service.Syncer
}

// NewClient opens the database and, when configured, the redis content cache. A cache that cannot
// be reached is logged and replaced by a no-op cache.
func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	db, err := config.GetDb(cfg)
	if err != nil {
		return nil, err
	}

	c := &client{
		db:    db,
		store: store.NewGormStore(db),
		notion: notion.NewClient(notion.NewHTTPTransport(notion.Options{
			Token:   cfg.Notion.Token,
			BaseURL: cfg.Notion.BaseURL,
			Version: cfg.Notion.Version,
			Timeout: cfg.Notion.Timeout,
		}), cfg.Notion.PageSize),
	}

	c.articles = service.NewArticleService(c.store, service.ArticleOptions{
		AuthorID:           cfg.Sync.AuthorID,
		SlugProperty:       cfg.Sync.SlugProperty,
		UpdateSlugProperty: cfg.Sync.UpdateSlugProperty,
		TagProperty:        cfg.Sync.TagProperty,
		CategoryProperty:   cfg.Sync.CategoryProperty,
	})

	contentCache, err := c.contentCache(ctx, cfg)
	if err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return nil, err
	}
	c.syncer = service.NewSyncer(c.notion, c.articles, contentCache)

	return c, nil
}

func (c *client) contentCache(ctx context.Context, cfg *config.Config) (cache.ContentCache, error) {
	if !cfg.Cache.Enabled() {
		return cache.NopCache{}, nil
	}

	encoder, err := compress.New(cfg.Cache.Compression)
	if err != nil {
		return nil, err
	}

	rdb, err := cache.NewRedisClient(ctx, cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB)
	if err != nil {
		logrus.Warnf("content cache disabled, redis %s unreachable: %v", cfg.Cache.Addr, err)
		return cache.NopCache{}, nil
	}
	c.redis = rdb

	return cache.NewRedisContentCache(rdb, encoder, cfg.Cache.TTL), nil
}

func (c *client) Notion() *notion.Client {
	return c.notion
}

func (c *client) Store() store.Store {
	return c.store
}

func (c *client) Articles() *service.ArticleService {
	return c.articles
}

func (c *client) Syncer() *service.Syncer {
	return c.syncer
}

func (c *client) Close() error {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			logrus.Errorf("error closing redis: %v", err)
		}
	}

	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
