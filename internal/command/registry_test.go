package command

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"pkg.mon.icu/guildly/internal/display"
)

// stubCommand answers every interaction with a fixed title.
type stubCommand struct {
	name  string
	title string
	err   error
	seen  *Args
}

func (c *stubCommand) Name() string { return c.name }

func (c *stubCommand) Declaration() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{Name: c.name}
}

func (c *stubCommand) Execute(_ context.Context, _ *Env, args *Args) (*display.Payload, error) {
	c.seen = args
	if c.err != nil {
		return nil, c.err
	}
	return display.New(display.Info, c.title), nil
}

func TestRegistry(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		r := NewRegistry(zaptest.NewLogger(t), Defaults()...)
		names := make([]string, 0)
		for _, c := range r.Commands() {
			names = append(names, c.Name())
		}
		assert.Equal(t, []string{"add", "remove", "search", "show servers"}, names)
	})

	t.Run("last registration wins", func(t *testing.T) {
		r := NewRegistry(zaptest.NewLogger(t))
		r.Register(&stubCommand{name: "x", title: "first"})
		r.Register(&stubCommand{name: "x", title: "second"})
		require.Len(t, r.Commands(), 1)

		p, err := r.Dispatch(ctx, nil, "x", nil)
		require.NoError(t, err)
		assert.Equal(t, "second", p.Title)
	})

	t.Run("unknown command", func(t *testing.T) {
		r := NewRegistry(zaptest.NewLogger(t), Defaults()...)
		_, err := r.Dispatch(ctx, nil, "nope", &Args{})
		assert.ErrorIs(t, err, ErrUnknownCommand)
	})

	t.Run("handler failure propagates", func(t *testing.T) {
		boom := errors.New("boom")
		r := NewRegistry(zaptest.NewLogger(t), &stubCommand{name: "x", err: boom})
		_, err := r.Dispatch(ctx, nil, "x", &Args{})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("nil args become empty", func(t *testing.T) {
		c := &stubCommand{name: "x"}
		r := NewRegistry(zaptest.NewLogger(t), c)
		_, err := r.Dispatch(ctx, nil, "x", nil)
		require.NoError(t, err)
		assert.NotNil(t, c.seen)
	})

	t.Run("dispatches to real command", func(t *testing.T) {
		env, _ := newTestEnv()
		r := NewRegistry(zaptest.NewLogger(t), Defaults()...)
		p, err := r.Dispatch(ctx, env, "add", opts("id", "42", "name", "Test Guild"))
		require.NoError(t, err)
		assert.Equal(t, "Server Added", p.Title)

		p, err = r.Dispatch(ctx, env, "search", opts("id", "42"))
		require.NoError(t, err)
		assert.Equal(t, "Test Guild", p.Author.Name)
	})
}
