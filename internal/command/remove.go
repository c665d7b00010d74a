package command

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"pkg.mon.icu/guildly/internal/display"
)

// Remove deletes a guild record.
type Remove struct{}

func (Remove) Name() string {
	return "remove"
}

func (Remove) Declaration() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "remove",
		Type:        discordgo.ChatApplicationCommand,
		Description: "Remove a server",
		Options: []*discordgo.ApplicationCommandOption{
			stringOption("id", "Server Id", true),
		},
	}
}

func (Remove) Execute(ctx context.Context, env *Env, args *Args) (*display.Payload, error) {
	id, hasID, invalid := parseID(args)
	if invalid != nil {
		return invalid, nil
	}
	if !hasID {
		return display.NewError("No Guild ID"), nil
	}

	old, err := env.Store.Remove(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("couldn't remove guild %d: %w", id, err)
	}
	if old == nil {
		return display.NewError("Not Found Guild"), nil
	}

	return display.FromGuild(old).WithTitle("Removed Server"), nil
}
