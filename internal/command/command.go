// Package command implements the guild directory commands and the registry
// that dispatches interactions to them.
package command

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"pkg.mon.icu/guildly/internal/display"
	"pkg.mon.icu/guildly/internal/links"
	"pkg.mon.icu/guildly/internal/storage/model"
	"pkg.mon.icu/guildly/internal/util"
)

// Store is the part of the guild directory the commands use.
// *storage.Storage satisfies it.
type Store interface {
	Upsert(ctx context.Context, g *model.Guild) (*model.Guild, error)
	Get(ctx context.Context, id model.Snowflake) (*model.Guild, error)
	Remove(ctx context.Context, id model.Snowflake) (*model.Guild, error)
	Search(ctx context.Context, name string) ([]*model.Guild, error)
}

// Env holds what commands share across interactions.
type Env struct {
	Store Store
	Links *links.Extractor
}

// Args is the decoded input of one interaction: string options for chat
// commands, selected message bodies for message commands.
type Args struct {
	Options  map[string]string
	Messages []string
}

func (a *Args) Option(name string) (string, bool) {
	if a == nil || a.Options == nil {
		return "", false
	}
	v, ok := a.Options[name]
	return v, ok
}

// Command is one registered interaction handler.
//
// Execute reports bad input as an error-colored payload. A returned error
// means the interaction could not be served at all.
type Command interface {
	Name() string
	Declaration() *discordgo.ApplicationCommand
	Execute(ctx context.Context, env *Env, args *Args) (*display.Payload, error)
}

// Defaults returns every command the bot offers.
func Defaults() []Command {
	return []Command{Add{}, Remove{}, Search{}, ShowFromMessage{}}
}

func stringOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

// parseID reads the "id" option. A nil payload with ok false means the option
// was absent.
func parseID(args *Args) (id model.Snowflake, ok bool, invalid *display.Payload) {
	raw, ok := args.Option("id")
	if !ok {
		return 0, false, nil
	}
	id, err := util.ParseSnowflake(raw)
	if err != nil {
		return 0, false, display.NewError("Invalid Server ID")
	}
	return id, true, nil
}

// parseURL reads an optional URL option, returning invalid if it is set but
// not an absolute URL.
func parseURL(args *Args, name, invalidTitle string) (u *model.URL, invalid *display.Payload) {
	raw, ok := args.Option(name)
	if !ok {
		return nil, nil
	}
	u, err := model.ParseURL(raw)
	if err != nil {
		return nil, display.NewError(invalidTitle)
	}
	return u, nil
}
