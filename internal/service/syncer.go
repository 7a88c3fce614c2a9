package service

import (
	"context"
	"fmt"

	"github.com/emrgen/pagesync/internal/cache"
	"github.com/emrgen/pagesync/internal/notion"
	"github.com/sirupsen/logrus"
)

// Report counts the outcome of one sync run.
type Report struct {
	Created int
	Updated int
	Skipped int
	Failed  int
	Errors  []error
}

func (r *Report) fail(err error) {
	r.Failed++
	r.Errors = append(r.Errors, err)
}

func (r *Report) String() string {
	return fmt.Sprintf("created=%d updated=%d skipped=%d failed=%d", r.Created, r.Updated, r.Skipped, r.Failed)
}

// Syncer pulls pages from the remote workspace and hands them to the ArticleService.
type Syncer struct {
	client   *notion.Client
	articles *ArticleService
	cache    cache.ContentCache
}

// NewSyncer creates a new Syncer. A nil cache disables content caching.
func NewSyncer(client *notion.Client, articles *ArticleService, contentCache cache.ContentCache) *Syncer {
	if contentCache == nil {
		contentCache = cache.NopCache{}
	}

	return &Syncer{
		client:   client,
		articles: articles,
		cache:    contentCache,
	}
}

// SyncDatabase syncs every page of a database, following cursors until the last result page.
func (s *Syncer) SyncDatabase(ctx context.Context, databaseID string) (*Report, error) {
	return s.SyncQuery(ctx, s.client.Query(notion.Databases(databaseID)))
}

// SyncQuery syncs every page a database query returns. A page that fails is counted and logged;
// only transport failures abort the run.
func (s *Syncer) SyncQuery(ctx context.Context, b *notion.Builder) (*Report, error) {
	report := &Report{}
	err := s.client.QueryAll(ctx, b, func(db *notion.Database) error {
		for _, failure := range db.Failures {
			logrus.WithFields(logrus.Fields{"page": failure.ID}).Errorf("failed to extract page: %v", failure.Err)
			report.fail(failure)
		}
		for _, page := range db.Pages {
			if err := s.syncPage(ctx, page, report); err != nil {
				report.fail(fmt.Errorf("page %s: %w", page.ID, err))
			}
		}
		return nil
	})
	if err != nil {
		return report, err
	}

	logrus.Infof("sync finished: %s", report)
	return report, nil
}

// SyncPage syncs a single page.
func (s *Syncer) SyncPage(ctx context.Context, pageID string) (*Report, error) {
	report := &Report{}
	page, err := s.client.Page(ctx, pageID)
	if err != nil {
		return report, err
	}

	if err := s.syncPage(ctx, page, report); err != nil {
		report.fail(err)
		return report, err
	}

	return report, nil
}

func (s *Syncer) syncPage(ctx context.Context, page *notion.Page, report *Report) error {
	log := logrus.WithFields(logrus.Fields{
		"page":  page.ID,
		"title": page.Title,
	})

	if page.Archived {
		log.Info("skipping archived page")
		if err := s.cache.DeleteContent(ctx, page.ID); err != nil {
			log.Warnf("content cache delete failed: %v", err)
		}
		report.Skipped++
		return nil
	}

	slug, err := s.articles.Slug(page)
	if err != nil {
		log.Errorf("failed to read slug: %v", err)
		return err
	}

	if err := s.content(ctx, page); err != nil {
		log.Errorf("failed to fetch content: %v", err)
		return err
	}

	exists, err := s.articles.IsExist(ctx, slug)
	if err != nil {
		return err
	}

	if exists {
		// update the row found under the same slug the existence check used
		if _, err := s.articles.UpdateArticleBySlug(ctx, slug, page); err != nil {
			log.Errorf("failed to update article: %v", err)
			return err
		}
		report.Updated++
		return nil
	}

	if _, err := s.articles.NewArticle(ctx, page); err != nil {
		log.Errorf("failed to create article: %v", err)
		return err
	}
	report.Created++
	return nil
}

// content fills page.Content from the cache or the remote block tree. Cache failures are logged
// and fall through to a fetch.
func (s *Syncer) content(ctx context.Context, page *notion.Page) error {
	content, ok, err := s.cache.GetContent(ctx, page.ID, page.EditedTime)
	if err != nil {
		logrus.Warnf("content cache read failed for page %s: %v", page.ID, err)
	}
	if ok {
		page.Content = content
		return nil
	}

	content, err = page.FetchContent(ctx, s.client)
	if err != nil {
		return err
	}

	if err := s.cache.SetContent(ctx, page.ID, page.EditedTime, content); err != nil {
		logrus.Warnf("content cache write failed for page %s: %v", page.ID, err)
	}
	return nil
}
