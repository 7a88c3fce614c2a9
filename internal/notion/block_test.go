package notion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestBlockList_Markdown(t *testing.T) {
	var blocks BlockList
	require.NoError(t, blocks.FromJSON(gjson.Parse(blocksJSON)))
	assert.Len(t, blocks.Blocks, 4)
	assert.False(t, blocks.HasMore)

	assert.Equal(t, "# Intro\n\nSome **bold** text\n\n```go\nfmt.Println()\n```", blocks.Markdown())
}

func TestBlock_Markdown(t *testing.T) {
	tests := []struct {
		block string
		want  string
	}{
		{`{"type":"heading_2","heading_2":{"rich_text":[{"plain_text":"Two"}]}}`, "## Two"},
		{`{"type":"heading_3","heading_3":{"rich_text":[{"plain_text":"Three"}]}}`, "### Three"},
		{`{"type":"bulleted_list_item","bulleted_list_item":{"rich_text":[{"plain_text":"item"}]}}`, "- item"},
		{`{"type":"numbered_list_item","numbered_list_item":{"rich_text":[{"plain_text":"first"}]}}`, "1. first"},
		{`{"type":"to_do","to_do":{"checked":true,"rich_text":[{"plain_text":"done"}]}}`, "- [x] done"},
		{`{"type":"to_do","to_do":{"checked":false,"rich_text":[{"plain_text":"open"}]}}`, "- [ ] open"},
		{`{"type":"quote","quote":{"rich_text":[{"plain_text":"wise"}]}}`, "> wise"},
		{`{"type":"divider","divider":{}}`, "---"},
		{`{"type":"image","image":{"type":"external","external":{"url":"https://x/y.png"},"caption":[{"plain_text":"pic"}]}}`, "![pic](https://x/y.png)"},
		{`{"type":"bookmark","bookmark":{"url":"https://go.dev"}}`, "[https://go.dev](https://go.dev)"},
		{`{"type":"paragraph","paragraph":{"rich_text":[{"plain_text":"docs","href":"https://go.dev","annotations":{"italic":true}}]}}`, "[*docs*](https://go.dev)"},
		{`{"type":"paragraph","paragraph":{"rich_text":[{"plain_text":"x := 1","annotations":{"code":true}}]}}`, "`x := 1`"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			block, err := newBlock(gjson.Parse(tt.block))
			require.NoError(t, err)
			got, ok := block.markdown()
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBlockList_FromJSON_Errors(t *testing.T) {
	var blocks BlockList
	assert.ErrorIs(t, blocks.FromJSON(gjson.Parse(`{"object":"list"}`)), ErrMissingField)
	assert.ErrorIs(t, blocks.FromJSON(gjson.Parse(`{"results":[{"type":"paragraph"}]}`)), ErrMissingField)
}
