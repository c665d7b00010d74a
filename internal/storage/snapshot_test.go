package storage

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pkg.mon.icu/guildly/internal/storage/model"
)

func TestWriteSnapshot(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteSnapshot(&buf, nil))
		assert.Equal(t, "[]\n", buf.String())
	})

	t.Run("pretty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteSnapshot(&buf, []*model.Guild{model.NewGuild("A", 1, nil, nil)}))
		assert.Equal(t, `[
  {
    "name": "A",
    "guild_id": 1,
    "invite_url": null,
    "icon_url": null
  }
]
`, buf.String())
	})
}

func TestReadSnapshot(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		want := []*model.Guild{
			model.NewGuild("A", 1, model.MustParseURL("https://discord.gg/a"), model.MustParseURL("https://cdn.example.com/a.png")),
			model.NewGuild("B", 2, nil, nil),
		}
		var buf bytes.Buffer
		require.NoError(t, WriteSnapshot(&buf, want))

		got, err := ReadSnapshot(&buf)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("bad url", func(t *testing.T) {
		_, err := ReadSnapshot(strings.NewReader(`[{"name":"A","guild_id":1,"invite_url":"not a url","icon_url":null}]`))
		assert.Error(t, err)
	})

	t.Run("null entry", func(t *testing.T) {
		_, err := ReadSnapshot(strings.NewReader(`[null]`))
		assert.Error(t, err)
	})

	t.Run("not an array", func(t *testing.T) {
		_, err := ReadSnapshot(strings.NewReader(`{}`))
		assert.Error(t, err)
	})
}
