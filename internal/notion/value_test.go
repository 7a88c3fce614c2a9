package notion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestTaggedPayload(t *testing.T) {
	tests := []struct {
		name    string
		node    string
		key     []string
		want    string
		wantErr error
		field   string
	}{
		{
			name: "payload of the node itself",
			node: `{"type":"number","number":7}`,
			want: "7",
		},
		{
			name: "payload under a key",
			node: `{"Views":{"type":"number","number":7}}`,
			key:  []string{"Views"},
			want: "7",
		},
		{
			name:    "key absent",
			node:    `{"Other":{}}`,
			key:     []string{"Views"},
			wantErr: ErrMissingField,
			field:   "Views",
		},
		{
			name:    "type absent",
			node:    `{"number":7}`,
			wantErr: ErrMissingField,
			field:   "type",
		},
		{
			name:    "type not a string",
			node:    `{"type":3}`,
			wantErr: ErrNotAString,
			field:   "type",
		},
		{
			name:    "payload absent",
			node:    `{"type":"rich_text"}`,
			wantErr: ErrMissingField,
			field:   "rich_text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TaggedPayload(gjson.Parse(tt.node), tt.key...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), tt.field)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got.Raw)
		})
	}
}

func TestString(t *testing.T) {
	node := gjson.Parse(`{"id":"abc","count":2,"empty":null}`)

	got, err := String(node, "id")
	assert.NoError(t, err)
	assert.Equal(t, "abc", got)

	_, err = String(node, "missing")
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "missing")

	_, err = String(node, "count")
	assert.ErrorIs(t, err, ErrNotAString)
	assert.Contains(t, err.Error(), "count")

	_, err = String(node, "empty")
	assert.ErrorIs(t, err, ErrNotAString)
}

func TestNullableString(t *testing.T) {
	node := gjson.Parse(`{"avatar_url":null,"name":"Ada"}`)

	got, err := nullableString(node, "avatar_url")
	assert.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = nullableString(node, "name")
	assert.NoError(t, err)
	assert.Equal(t, "Ada", got)

	_, err = nullableString(node, "email")
	assert.ErrorIs(t, err, ErrMissingField)
}
