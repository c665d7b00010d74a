package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"pkg.mon.icu/guildly/internal/storage"
	"pkg.mon.icu/guildly/internal/storage/model"
)

func newTestAPI(t *testing.T, gs ...*model.Guild) (*API, *storage.Storage) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zaptest.NewLogger(t)
	store, err := storage.Open(context.Background(), log, storage.DriverSQLite, filepath.Join(t.TempDir(), "guildly.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Import(context.Background(), gs))

	return NewAPI(context.Background(), log.Sugar(), store, NewConfig(0)), store
}

func get(t *testing.T, a *API, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestGetGuilds(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		a, _ := newTestAPI(t)
		w := get(t, a, "/guilds")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("snapshot", func(t *testing.T) {
		a, _ := newTestAPI(t,
			model.NewGuild("Alpha", 1, model.MustParseURL("https://discord.gg/alpha"), nil),
			model.NewGuild("Beta", 2, nil, nil),
		)
		w := get(t, a, "/guilds")
		assert.Equal(t, http.StatusOK, w.Code)

		var gs []*model.Guild
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &gs))
		require.Len(t, gs, 2)
		names := []string{gs[0].Name, gs[1].Name}
		assert.ElementsMatch(t, []string{"Alpha", "Beta"}, names)
	})
}

func TestGetGuild(t *testing.T) {
	a, _ := newTestAPI(t, model.NewGuild("Alpha", 18446744073709551615, model.MustParseURL("https://discord.gg/alpha"), nil))

	t.Run("found", func(t *testing.T) {
		w := get(t, a, "/guilds/18446744073709551615")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"name":"Alpha","guild_id":18446744073709551615,"invite_url":"https://discord.gg/alpha","icon_url":null}`, w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		w := get(t, a, "/guilds/7")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "error")
	})

	t.Run("bad id", func(t *testing.T) {
		w := get(t, a, "/guilds/abc")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSearchGuilds(t *testing.T) {
	a, store := newTestAPI(t,
		model.NewGuild("Go Gophers", 1, nil, nil),
		model.NewGuild("Rustaceans", 2, nil, nil),
	)

	t.Run("match", func(t *testing.T) {
		w := get(t, a, "/guilds/search?name=gopher")
		assert.Equal(t, http.StatusOK, w.Code)

		var gs []*model.Guild
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &gs))
		require.Len(t, gs, 1)
		assert.Equal(t, uint64(1), gs[0].ID)
	})

	t.Run("missing name", func(t *testing.T) {
		w := get(t, a, "/guilds/search")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("storage failure", func(t *testing.T) {
		require.NoError(t, store.Close())
		w := get(t, a, "/guilds/search?name=go")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
