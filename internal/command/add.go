package command

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"pkg.mon.icu/guildly/internal/display"
	"pkg.mon.icu/guildly/internal/storage/model"
)

// Add creates or replaces a guild record.
type Add struct{}

func (Add) Name() string {
	return "add"
}

func (Add) Declaration() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "add",
		Type:        discordgo.ChatApplicationCommand,
		Description: "Add a server",
		Options: []*discordgo.ApplicationCommandOption{
			stringOption("id", "Server Id", true),
			stringOption("name", "Guild Name", true),
			stringOption("icon", "Icon Url", false),
			stringOption("invite", "Invite Url", false),
		},
	}
}

func (Add) Execute(ctx context.Context, env *Env, args *Args) (*display.Payload, error) {
	id, hasID, invalid := parseID(args)
	if invalid != nil {
		return invalid, nil
	}

	icon, invalid := parseURL(args, "icon", "Invalid Icon URL")
	if invalid != nil {
		return invalid, nil
	}
	// The invite error deliberately reads the same as the icon one.
	invite, invalid := parseURL(args, "invite", "Invalid Icon URL")
	if invalid != nil {
		return invalid, nil
	}

	name, _ := args.Option("name")
	if name == "" {
		return display.NewError("No Guild Name"), nil
	}
	if !hasID {
		return display.NewError("No Guild ID"), nil
	}

	g := model.NewGuild(name, id, invite, icon)
	if _, err := env.Store.Upsert(ctx, g); err != nil {
		return nil, fmt.Errorf("couldn't add guild %d: %w", id, err)
	}

	return display.FromGuild(g).WithTitle("Server Added"), nil
}
