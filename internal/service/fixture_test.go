package service

import (
	"context"
	"errors"
	"testing"

	"github.com/emrgen/pagesync/internal/model"
	"github.com/emrgen/pagesync/internal/notion"
	"github.com/emrgen/pagesync/internal/store"
	"github.com/emrgen/pagesync/internal/tester"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const pageID = "7c1f4b1e-9d3a-4f62-8a55-0c4c9e3f2b10"

const pageJSON = `{
	"object": "page",
	"id": "7c1f4b1e-9d3a-4f62-8a55-0c4c9e3f2b10",
	"created_time": "2024-03-01T08:30:00.000Z",
	"last_edited_time": "2024-03-02T10:00:00.000Z",
	"last_edited_by": {"object": "user", "id": "u-editor"},
	"cover": null,
	"icon": null,
	"archived": false,
	"url": "https://www.notion.so/Hello-World-7c1f4b1e9d3a4f628a550c4c9e3f2b10",
	"properties": {
		"Author": {"id": "a", "type": "people", "people": [{
			"object": "user", "id": "u-author", "name": "Ada", "avatar_url": null,
			"type": "person", "person": {"email": "ada@example.com"}}]},
		"Slug": {"id": "d", "type": "rich_text", "rich_text": [{"plain_text": "hello-world", "id": "abc"}]},
		"slug": {"id": "d2", "type": "rich_text", "rich_text": [{"plain_text": "hello-world", "id": "abc"}]},
		"Tag": {"id": "e", "type": "multi_select", "multi_select": [
			{"id": "t1", "name": "go", "color": "blue"},
			{"id": "t2", "name": "sync", "color": "red"}]},
		"Category": {"id": "f", "type": "select", "select": {"id": "c1", "name": "notes", "color": "gray"}},
		"Name": {"id": "title", "type": "title", "title": [{"plain_text": "Hello World"}]}
	}
}`

const blocksJSON = `{
	"object": "list",
	"results": [
		{"id": "b1", "type": "heading_1", "heading_1": {"rich_text": [{"plain_text": "Intro"}]}},
		{"id": "b2", "type": "paragraph", "paragraph": {"rich_text": [{"plain_text": "Body"}]}}
	],
	"next_cursor": null,
	"has_more": false
}`

// Unix times of the fixture's created_time and last_edited_time.
const (
	createdUnix = int64(1709281800)
	editedUnix  = int64(1709373600)
)

// set applies sjson edits to raw, each as a path/value pair. A nil value deletes the path.
func set(t *testing.T, raw string, edits ...any) string {
	t.Helper()
	require.True(t, len(edits)%2 == 0)

	var err error
	for i := 0; i < len(edits); i += 2 {
		path := edits[i].(string)
		if edits[i+1] == nil {
			raw, err = sjson.Delete(raw, path)
		} else {
			raw, err = sjson.Set(raw, path, edits[i+1])
		}
		require.NoError(t, err)
	}
	return raw
}

func parsePage(t *testing.T, raw string) *notion.Page {
	t.Helper()
	page := new(notion.Page)
	require.NoError(t, page.FromJSON(gjson.Parse(raw)))
	return page
}

func newArticleService() *ArticleService {
	tester.Reset()
	return NewArticleService(store.NewGormStore(tester.TestDB()), DefaultArticleOptions())
}

func countRows(t *testing.T, table any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, tester.TestDB().Model(table).Count(&n).Error)
	return n
}

func metaByName(t *testing.T, name string) *model.Meta {
	t.Helper()
	var meta model.Meta
	require.NoError(t, tester.TestDB().Where("name = ?", name).First(&meta).Error)
	return &meta
}

var errInjected = errors.New("injected failure")

// failingStore fails every relationship insert, including inside transactions.
type failingStore struct {
	store.Store
}

func (f *failingStore) CreateRelationship(context.Context, *model.Relationship) error {
	return errInjected
}

func (f *failingStore) Transaction(ctx context.Context, fn func(tx store.Store) error) error {
	return f.Store.Transaction(ctx, func(tx store.Store) error {
		return fn(&failingStore{Store: tx})
	})
}
