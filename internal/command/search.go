package command

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"pkg.mon.icu/guildly/internal/display"
)

// Search looks guilds up by exact ID or by name substring. Exactly one of the
// two options must be given.
type Search struct{}

func (Search) Name() string {
	return "search"
}

func (Search) Declaration() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "search",
		Type:        discordgo.ChatApplicationCommand,
		Description: "Search servers",
		Options: []*discordgo.ApplicationCommandOption{
			stringOption("id", "Server Id", false),
			stringOption("name", "Server Name", false),
		},
	}
}

func (Search) Execute(ctx context.Context, env *Env, args *Args) (*display.Payload, error) {
	id, hasID, invalid := parseID(args)
	if invalid != nil {
		return invalid, nil
	}
	name, hasName := args.Option("name")

	switch {
	case hasID && !hasName:
		g, err := env.Store.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("couldn't find guild %d: %w", id, err)
		}
		if g == nil {
			return display.NewWarn("No Servers Found"), nil
		}
		return display.FromGuild(g), nil

	case hasName && !hasID:
		gs, err := env.Store.Search(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("couldn't search guilds for %q: %w", name, err)
		}
		return display.FromGuilds(gs), nil

	default:
		return display.NewError("Provide Server ID or Name"), nil
	}
}
