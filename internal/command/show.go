package command

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"pkg.mon.icu/guildly/internal/display"
	"pkg.mon.icu/guildly/internal/storage/model"
)

// ShowFromMessage lists the known guilds linked from the selected messages.
type ShowFromMessage struct{}

func (ShowFromMessage) Name() string {
	return "show servers"
}

func (ShowFromMessage) Declaration() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name: "show servers",
		Type: discordgo.MessageApplicationCommand,
	}
}

func (ShowFromMessage) Execute(ctx context.Context, env *Env, args *Args) (*display.Payload, error) {
	var found []*model.Guild
	for _, msg := range args.Messages {
		for id := range env.Links.GuildIDs(msg) {
			g, err := env.Store.Get(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("couldn't find guild %d: %w", id, err)
			}
			if g != nil {
				found = append(found, g)
			}
		}
	}

	return display.FromGuilds(found), nil
}
