package discord

import (
	"github.com/bwmarrin/discordgo"
	"pkg.mon.icu/guildly/internal/util"
)

func (d *Discord) onReady(_ *discordgo.Session, e *discordgo.Ready) {
	d.logger.Sugar().Infof("Logged in Discord API as %s.", e.User)

	var guildID string
	if d.config.guild != 0 {
		guildID = util.FormatSnowflake(d.config.guild)
	}

	for _, c := range d.registry.Commands() {
		created, err := d.session.ApplicationCommandCreate(e.User.ID, guildID, c.Declaration())
		if err != nil {
			d.logger.Sugar().Errorf("Failed to create command %s: %s.", c.Name(), err)
			continue
		}
		d.logger.Sugar().Infof("Created command %s (%s).", created.Name, created.ID)
	}
}

func (d *Discord) onInteractionCreate(_ *discordgo.Session, e *discordgo.InteractionCreate) {
	if e.Type != discordgo.InteractionApplicationCommand {
		return
	}
	d.handleCommand(e.Interaction)
}
