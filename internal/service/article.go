package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/emrgen/pagesync/internal/model"
	"github.com/emrgen/pagesync/internal/notion"
	"github.com/emrgen/pagesync/internal/store"
	"github.com/sirupsen/logrus"
)

// ArticleOptions controls how page properties map onto blog rows.
type ArticleOptions struct {
	AuthorID uint
	// SlugProperty is read when creating an article.
	SlugProperty string
	// UpdateSlugProperty is read when updating one. It defaults to the lowercase "slug" that
	// existing workspaces use for updates; set both to the same name to unify them.
	UpdateSlugProperty string
	TagProperty        string
	CategoryProperty   string
}

func DefaultArticleOptions() ArticleOptions {
	return ArticleOptions{
		AuthorID:           1,
		SlugProperty:       "Slug",
		UpdateSlugProperty: "slug",
		TagProperty:        "Tag",
		CategoryProperty:   "Category",
	}
}

// NewArticleService creates a new ArticleService. Empty option fields fall back to the defaults.
func NewArticleService(store store.Store, opts ArticleOptions) *ArticleService {
	defaults := DefaultArticleOptions()
	if opts.AuthorID == 0 {
		opts.AuthorID = defaults.AuthorID
	}
	if opts.SlugProperty == "" {
		opts.SlugProperty = defaults.SlugProperty
	}
	if opts.UpdateSlugProperty == "" {
		opts.UpdateSlugProperty = defaults.UpdateSlugProperty
	}
	if opts.TagProperty == "" {
		opts.TagProperty = defaults.TagProperty
	}
	if opts.CategoryProperty == "" {
		opts.CategoryProperty = defaults.CategoryProperty
	}

	return &ArticleService{
		store: store,
		opts:  opts,
	}
}

// ArticleService writes pages into the blog tables.
type ArticleService struct {
	store store.Store
	opts  ArticleOptions
}

func (a *ArticleService) Options() ArticleOptions {
	return a.opts
}

// Slug returns the creation slug of a page.
func (a *ArticleService) Slug(page *notion.Page) (string, error) {
	return firstMatch(page, a.opts.SlugProperty)
}

// IsExist reports whether a content row with the slug exists.
func (a *ArticleService) IsExist(ctx context.Context, slug string) (bool, error) {
	return a.store.ExistsContent(ctx, slug)
}

// pendingMeta is a tag or category that has no row yet.
type pendingMeta struct {
	name     string
	slug     string
	metaType string
}

// NewArticle inserts the page as a new content row and links its tags and category. All lookups
// and counter increments of existing metas finish before any missing meta is created. Calling it
// twice for the same page creates two rows and counts shared metas twice; callers check IsExist
// first.
func (a *ArticleService) NewArticle(ctx context.Context, page *notion.Page) (*model.Content, error) {
	slug, err := firstMatch(page, a.opts.SlugProperty)
	if err != nil {
		return nil, err
	}
	created, err := unixTime(page.CreatedTime)
	if err != nil {
		return nil, err
	}
	modified, err := unixTime(page.EditedTime)
	if err != nil {
		return nil, err
	}
	categories := page.SearchProperty(a.opts.CategoryProperty)
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingProperty, a.opts.CategoryProperty)
	}

	content := &model.Content{
		Title:        page.Title,
		Slug:         slug,
		Created:      created,
		Modified:     modified,
		Text:         model.MarkdownMarker + page.Content,
		AuthorID:     a.opts.AuthorID,
		Type:         model.ContentTypePost,
		Status:       model.ContentStatusPublish,
		AllowComment: "1",
		AllowPing:    "0",
		AllowFeed:    "1",
	}

	err = a.store.Transaction(ctx, func(tx store.Store) error {
		if err := tx.CreateContent(ctx, content); err != nil {
			return err
		}

		var linked []uint
		var pending []pendingMeta
		lookup := func(match notion.Match, metaType string) error {
			meta, err := tx.GetMetaByName(ctx, match.Value)
			if errors.Is(err, store.ErrMetaNotFound) {
				pending = append(pending, pendingMeta{name: match.Value, slug: match.ID, metaType: metaType})
				return nil
			}
			if err != nil {
				return err
			}
			if err := tx.IncrementMetaCount(ctx, meta.ID); err != nil {
				return err
			}
			linked = append(linked, meta.ID)
			return nil
		}

		for _, tag := range page.SearchProperty(a.opts.TagProperty) {
			if err := lookup(tag, model.MetaTypeTag); err != nil {
				return err
			}
		}
		if err := lookup(categories[0], model.MetaTypeCategory); err != nil {
			return err
		}

		for _, p := range pending {
			meta := &model.Meta{
				Name:   p.name,
				Slug:   p.slug,
				Type:   p.metaType,
				Count:  1,
				Order:  0,
				Parent: 0,
			}
			if err := tx.CreateMeta(ctx, meta); err != nil {
				return err
			}
			linked = append(linked, meta.ID)
		}

		// reused metas are linked as well as created ones
		seen := make(map[uint]struct{}, len(linked))
		for _, id := range linked {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			err := tx.CreateRelationship(ctx, &model.Relationship{ContentID: content.ID, MetaID: id})
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.Infof("created article %s (cid %d)", slug, content.ID)
	return content, nil
}

// UpdateArticle rewrites title, modified time and body of an existing content row. Tags and
// categories are left alone.
func (a *ArticleService) UpdateArticle(ctx context.Context, page *notion.Page) (*model.Content, error) {
	slug, err := firstMatch(page, a.opts.UpdateSlugProperty)
	if err != nil {
		return nil, err
	}
	return a.UpdateArticleBySlug(ctx, slug, page)
}

// UpdateArticleBySlug is UpdateArticle for a slug the caller already resolved.
func (a *ArticleService) UpdateArticleBySlug(ctx context.Context, slug string, page *notion.Page) (*model.Content, error) {
	modified, err := unixTime(page.EditedTime)
	if err != nil {
		return nil, err
	}

	var content *model.Content
	err = a.store.Transaction(ctx, func(tx store.Store) error {
		existing, err := tx.GetContentBySlug(ctx, slug)
		if errors.Is(err, store.ErrContentNotFound) {
			return fmt.Errorf("%w: %s", ErrPageNotFound, slug)
		}
		if err != nil {
			return err
		}

		existing.Title = page.Title
		existing.Modified = modified
		existing.Text = model.MarkdownMarker + page.Content
		if err := tx.UpdateContent(ctx, existing); err != nil {
			return err
		}

		content = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.Infof("updated article %s (cid %d)", slug, content.ID)
	return content, nil
}

// Article is a stored content row with the metas linked to it.
type Article struct {
	Content    *model.Content
	Tags       []*model.Meta
	Categories []*model.Meta
}

// Articles returns every content row stored under slug with its tags and categories.
func (a *ArticleService) Articles(ctx context.Context, slug string) ([]*Article, error) {
	contents, err := a.store.ListContentsBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if len(contents) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrPageNotFound, slug)
	}

	metas, err := a.store.ListMetas(ctx, "")
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*model.Meta, len(metas))
	for _, meta := range metas {
		byID[meta.ID] = meta
	}

	articles := make([]*Article, 0, len(contents))
	for _, content := range contents {
		rels, err := a.store.ListRelationships(ctx, content.ID)
		if err != nil {
			return nil, err
		}

		article := &Article{Content: content}
		for _, rel := range rels {
			meta, ok := byID[rel.MetaID]
			if !ok {
				continue
			}
			switch meta.Type {
			case model.MetaTypeCategory:
				article.Categories = append(article.Categories, meta)
			default:
				article.Tags = append(article.Tags, meta)
			}
		}
		articles = append(articles, article)
	}

	return articles, nil
}

func firstMatch(page *notion.Page, property string) (string, error) {
	matches := page.SearchProperty(property)
	if len(matches) == 0 || matches[0].Value == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingProperty, property)
	}
	return matches[0].Value, nil
}

func unixTime(value string) (int64, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrDateParse, value)
	}
	return t.Unix(), nil
}
