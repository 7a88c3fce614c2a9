package notion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

func parsePage(t *testing.T, raw string) (*Page, error) {
	t.Helper()
	page := new(Page)
	err := page.FromJSON(gjson.Parse(raw))
	return page, err
}

func TestPage_FromJSON(t *testing.T) {
	page, err := parsePage(t, pageJSON)
	require.NoError(t, err)

	assert.Equal(t, "7c1f4b1e-9d3a-4f62-8a55-0c4c9e3f2b10", page.ID)
	assert.Equal(t, "2024-03-01T08:30:00.000Z", page.CreatedTime)
	assert.Equal(t, "2024-03-02T10:00:00.000Z", page.EditedTime)
	assert.Equal(t, "Hello World", page.Title)
	assert.Equal(t, "u-editor", page.EditorID)
	assert.Equal(t, "https://example.com/cover.png", page.Cover)
	assert.Equal(t, "📝", page.Icon)
	assert.False(t, page.Archived)
	assert.Equal(t, "https://www.notion.so/Hello-World-7c1f4b1e9d3a4f628a550c4c9e3f2b10", page.URL)
	assert.Empty(t, page.Content)

	assert.Equal(t, Author{
		ID:        "u-author",
		Name:      "Ada",
		AvatarURL: "",
		Email:     "ada@example.com",
		UserType:  "person",
	}, page.Author)

	var names []string
	for _, p := range page.Properties {
		names = append(names, p.Type.Name)
	}
	assert.Equal(t, []string{"Slug", "Tag", "Category", "Views", "Draft"}, names)
}

func TestPage_SearchProperty(t *testing.T) {
	page, err := parsePage(t, pageJSON)
	require.NoError(t, err)

	tests := []struct {
		name string
		want []Match
	}{
		{name: "Slug", want: []Match{{Value: "hello-world", ID: "abc"}}},
		{name: "Tag", want: []Match{{Value: "go", ID: "t1"}, {Value: "sync", ID: "t2"}}},
		{name: "Category", want: []Match{{Value: "notes", ID: "c1"}}},
		{name: "Views", want: []Match{{Value: "", ID: ""}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, page.SearchProperty(tt.name))
		})
	}

	assert.Empty(t, page.SearchProperty("Missing"))
	assert.Empty(t, page.SearchProperty("slug"))
	assert.Empty(t, page.SearchProperty("Name"))
}

func TestPage_SearchProperty_Scenario(t *testing.T) {
	raw, err := sjson.SetRaw(pageJSON, "properties.Slug",
		`{"type":"rich_text","rich_text":[{"plain_text":"hello-world","id":"abc"}]}`)
	require.NoError(t, err)

	page, err := parsePage(t, raw)
	require.NoError(t, err)
	assert.Equal(t, []Match{{Value: "hello-world", ID: "abc"}}, page.SearchProperty("Slug"))
}

func TestPage_FromJSON_Errors(t *testing.T) {
	set := func(path, value string) string {
		out, err := sjson.SetRaw(pageJSON, path, value)
		require.NoError(t, err)
		return out
	}
	drop := func(path string) string {
		out, err := sjson.Delete(pageJSON, path)
		require.NoError(t, err)
		return out
	}

	tests := []struct {
		name    string
		raw     string
		wantErr error
		field   string
	}{
		{name: "no Name property", raw: withoutProperty("Name"), wantErr: ErrMissingField, field: "Name"},
		{name: "empty title", raw: set("properties.Name.title", `[]`), wantErr: ErrMissingField, field: "Name"},
		{name: "no Author property", raw: withoutProperty("Author"), wantErr: ErrMissingField, field: "Author"},
		{name: "author without person", raw: drop("properties.Author.created_by.person"), wantErr: ErrMissingField, field: "person"},
		{name: "author without email", raw: drop("properties.Author.created_by.person.email"), wantErr: ErrMissingField, field: "email"},
		{name: "no properties", raw: drop("properties"), wantErr: ErrMissingField, field: "properties"},
		{name: "no id", raw: drop("id"), wantErr: ErrMissingField, field: "id"},
		{name: "no archived flag", raw: drop("archived"), wantErr: ErrMissingField, field: "archived"},
		{name: "id not a string", raw: set("id", `12`), wantErr: ErrNotAString, field: "id"},
		{name: "unknown property kind", raw: set("properties.Link", `{"type":"url","url":"https://x"}`), wantErr: ErrUnknownPropertyType, field: "url"},
		{name: "property missing payload", raw: set("properties.Views", `{"type":"number"}`), wantErr: ErrMissingField, field: "number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parsePage(t, tt.raw)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestPage_AuthorFromPeopleArray(t *testing.T) {
	raw, err := sjson.SetRaw(pageJSON, "properties.Author", `{"type":"people","people":[
		{"object":"user","id":"u-2","name":"Grace","avatar_url":"https://a/g.png","type":"person","person":{"email":"grace@example.com"}}]}`)
	require.NoError(t, err)

	page, err := parsePage(t, raw)
	require.NoError(t, err)
	assert.Equal(t, "Grace", page.Author.Name)
	assert.Equal(t, "https://a/g.png", page.Author.AvatarURL)
	assert.Equal(t, "grace@example.com", page.Author.Email)
}

func TestPage_FetchContent(t *testing.T) {
	page, err := parsePage(t, pageJSON)
	require.NoError(t, err)

	transport := newFakeTransport().on("GET", "blocks/"+page.ID+"/children", blocksJSON)
	client := NewClient(transport, 0)

	content, err := page.FetchContent(context.TODO(), client)
	require.NoError(t, err)
	assert.Equal(t, content, page.Content)
	assert.Contains(t, content, "# Intro")

	// fetching again re-requests the body
	_, err = page.FetchContent(context.TODO(), client)
	require.NoError(t, err)
	assert.Len(t, transport.requests, 2)
}
