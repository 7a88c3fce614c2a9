package notion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	const want = "7c1f4b1e-9d3a-4f62-8a55-0c4c9e3f2b10"

	for _, raw := range []string{
		want,
		"7c1f4b1e9d3a4f628a550c4c9e3f2b10",
		" 7c1f4b1e9d3a4f628a550c4c9e3f2b10 ",
		"https://www.notion.so/Hello-World-7c1f4b1e9d3a4f628a550c4c9e3f2b10",
		"https://www.notion.so/workspace/7c1f4b1e9d3a4f628a550c4c9e3f2b10?v=1234",
	} {
		got, err := ParseID(raw)
		assert.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseID("not-an-id")
	assert.Error(t, err)
}
