package discord

import (
	"errors"
	"fmt"
	"sort"

	"github.com/bwmarrin/discordgo"
	"pkg.mon.icu/guildly/internal/command"
	"pkg.mon.icu/guildly/internal/display"
)

// handleCommand dispatches one application command and always answers it.
func (d *Discord) handleCommand(i *discordgo.Interaction) {
	data := i.ApplicationCommandData()

	var p *display.Payload
	args, err := argsFromData(data)
	if err == nil {
		p, err = d.registry.Dispatch(d.ctx, d.env, data.Name, args)
	}

	switch {
	case err == nil:
	case errors.Is(err, command.ErrUnknownCommand):
		d.logger.Sugar().Warnf("Not found command %s.", data.Name)
		p = display.NewError("Unknown Command")
	default:
		d.logger.Sugar().Errorf("Failed to execute command %s: %s.", data.Name, err)
		p = display.NewError("Internal Error")
	}

	if err := d.session.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{p.Embed()}},
	}); err != nil {
		d.logger.Sugar().Errorf("Failed to respond to command %s: %s.", data.Name, err)
	}
}

// argsFromData flattens the interaction options and resolved messages.
func argsFromData(data discordgo.ApplicationCommandInteractionData) (*command.Args, error) {
	args := &command.Args{Options: make(map[string]string, len(data.Options))}
	for _, o := range data.Options {
		v, ok := o.Value.(string)
		if o.Type != discordgo.ApplicationCommandOptionString || !ok {
			return nil, fmt.Errorf("%w: %s of type %v", command.ErrUnexpectedOption, o.Name, o.Type)
		}
		args.Options[o.Name] = v
	}

	if data.Resolved != nil && len(data.Resolved.Messages) > 0 {
		ids := make([]string, 0, len(data.Resolved.Messages))
		for id := range data.Resolved.Messages {
			ids = append(ids, id)
		}
		// snowflakes of equal length sort the same as text
		sort.Slice(ids, func(i, j int) bool {
			if len(ids[i]) != len(ids[j]) {
				return len(ids[i]) < len(ids[j])
			}
			return ids[i] < ids[j]
		})
		for _, id := range ids {
			args.Messages = append(args.Messages, data.Resolved.Messages[id].Content)
		}
	}

	return args, nil
}
