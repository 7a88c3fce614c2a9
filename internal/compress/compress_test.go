package compress

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecs(t *testing.T) {
	content := strings.Repeat("# Intro\n\nSome **bold** text\n\n", 64)

	for _, name := range []string{"none", "gzip", "brotli", "lz4"} {
		t.Run(name, func(t *testing.T) {
			codec, err := New(name)
			require.NoError(t, err)

			encoded, err := codec.Encode([]byte(content))
			require.NoError(t, err)
			if name != "none" {
				assert.Less(t, len(encoded), len(content))
			}

			decoded, err := codec.Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, content, string(decoded))
		})
	}
}

func TestNew_Unknown(t *testing.T) {
	_, err := New("zstd")
	assert.ErrorIs(t, err, ErrUnknownCodec)

	codec, err := New("")
	require.NoError(t, err)
	assert.IsType(t, Nop{}, codec)
}
