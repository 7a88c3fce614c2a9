package notion

import (
	"context"

	"github.com/tidwall/gjson"
)

// systemProperties are promoted to dedicated Page fields and left out of Page.Properties.
var systemProperties = map[string]struct{}{
	"Author":       {},
	"Created time": {},
	"created_time": {},
	"Edited time":  {},
	"Name":         {},
}

// Page is one remote page with its typed properties. Content stays empty until FetchContent runs.
type Page struct {
	ID          string
	CreatedTime string
	EditedTime  string
	Author      Author
	EditorID    string
	Cover       string
	Icon        string
	Title       string
	Archived    bool
	URL         string
	Properties  []*Property
	Content     string
}

var _ decoder = (*Page)(nil)

// FromJSON builds the page from a raw page object. Any missing required field fails the whole page.
func (p *Page) FromJSON(node gjson.Result) error {
	properties := node.Get("properties")
	if !properties.IsObject() {
		return missingField("properties")
	}

	author, err := newAuthor(properties)
	if err != nil {
		return err
	}

	var props []*Property
	properties.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if _, ok := systemProperties[name]; ok {
			return true
		}
		var prop *Property
		prop, err = NewProperty(name, value)
		if err != nil {
			return false
		}
		props = append(props, prop)
		return true
	})
	if err != nil {
		return err
	}

	id, err := String(node, "id")
	if err != nil {
		return err
	}
	created, err := String(node, "created_time")
	if err != nil {
		return err
	}
	edited, err := String(node, "last_edited_time")
	if err != nil {
		return err
	}
	title, err := pageTitle(properties)
	if err != nil {
		return err
	}
	archived := node.Get("archived")
	if !archived.Exists() {
		return missingField("archived")
	}

	*p = Page{
		ID:          id,
		CreatedTime: created,
		EditedTime:  edited,
		Author:      author,
		EditorID:    optionalString(node.Get("last_edited_by"), "id"),
		Cover:       fileURL(node.Get("cover")),
		Icon:        fileURL(node.Get("icon")),
		Title:       title,
		Archived:    archived.Bool(),
		URL:         optionalString(node, "url"),
		Properties:  props,
	}
	return nil
}

func pageTitle(properties gjson.Result) (string, error) {
	segments, err := TaggedPayload(properties, "Name")
	if err != nil {
		return "", err
	}
	if !segments.IsArray() || len(segments.Array()) == 0 {
		return "", missingField("Name")
	}
	return String(segments.Array()[0], "plain_text")
}

// fileURL resolves a cover or icon: a plain string, an emoji, or a hosted/external file URL.
func fileURL(node gjson.Result) string {
	if node.Type == gjson.String {
		return node.Str
	}
	payload, err := TaggedPayload(node)
	if err != nil {
		return ""
	}
	if payload.Type == gjson.String {
		return payload.Str
	}
	return optionalString(payload, "url")
}

// Match is one value found by SearchProperty together with the id of the record it came from.
type Match struct {
	Value string
	ID    string
}

// SearchProperty returns the values of the first property called name. The record key read depends
// on the property kind. An unknown name yields no matches.
func (p *Page) SearchProperty(name string) []Match {
	var matches []Match
	for _, prop := range p.Properties {
		if prop.Type.Name != name {
			continue
		}
		key := prop.valueKey()
		for _, record := range prop.Data {
			matches = append(matches, Match{
				Value: record[key],
				ID:    record["id"],
			})
		}
		break
	}
	return matches
}

// Property returns the first property called name.
func (p *Page) Property(name string) (*Property, bool) {
	for _, prop := range p.Properties {
		if prop.Type.Name == name {
			return prop, true
		}
	}
	return nil, false
}

// FetchContent downloads the page body, renders it to markdown and stores it on the page.
// Calling it again re-fetches and overwrites.
func (p *Page) FetchContent(ctx context.Context, client *Client) (string, error) {
	blocks, err := client.Blocks(ctx, p.ID)
	if err != nil {
		return "", err
	}
	p.Content = blocks.Markdown()
	return p.Content, nil
}
