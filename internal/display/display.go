// Package display builds the embeds the bot answers with.
package display

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"pkg.mon.icu/guildly/internal/storage/model"
)

type Color int

const (
	Info  Color = 0x6FC6E2
	Warn  Color = 0xE67E22
	Error Color = 0xE74C3C
)

func (c Color) String() string {
	switch c {
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return fmt.Sprintf("Color(%#x)", int(c))
	}
}

const blankValue = "\u200b"

type Author struct {
	Name string
	URL  string
	Icon string
}

type Field struct {
	Label  string
	Value  string
	Inline bool
}

// Payload is the response to one interaction.
type Payload struct {
	Color  Color
	Title  string
	Author *Author
	Fields []Field
}

func New(c Color, title string) *Payload {
	return &Payload{Color: c, Title: title}
}

func NewError(title string) *Payload {
	return New(Error, title)
}

func NewWarn(title string) *Payload {
	return New(Warn, title)
}

// WithTitle sets the title and returns p.
func (p *Payload) WithTitle(title string) *Payload {
	p.Title = title
	return p
}

// FromGuild renders g as an author line linking to its invite with its icon.
func FromGuild(g *model.Guild) *Payload {
	a := &Author{Name: g.Name}
	if g.InviteURL != nil {
		a.URL = g.InviteURL.String()
	}
	if g.IconURL != nil {
		a.Icon = g.IconURL.String()
	}
	return &Payload{Color: Info, Author: a}
}

// FromGuilds renders a search result: a warning when empty, the single-guild
// form for one guild, otherwise one field per guild in order.
func FromGuilds(gs []*model.Guild) *Payload {
	switch len(gs) {
	case 0:
		return NewWarn("No Servers Found")
	case 1:
		return FromGuild(gs[0])
	}

	p := New(Info, "Servers")
	p.Fields = make([]Field, 0, len(gs))
	for _, g := range gs {
		label := g.Name
		if g.InviteURL != nil {
			label = fmt.Sprintf("[%s](%s)", g.Name, g.InviteURL)
		}
		p.Fields = append(p.Fields, Field{Label: label})
	}
	return p
}

// Embed converts p to a discordgo embed.
func (p *Payload) Embed() *discordgo.MessageEmbed {
	em := &discordgo.MessageEmbed{Color: int(p.Color), Title: p.Title}
	if p.Author != nil {
		em.Author = &discordgo.MessageEmbedAuthor{Name: p.Author.Name, URL: p.Author.URL, IconURL: p.Author.Icon}
	}
	for _, f := range p.Fields {
		v := f.Value
		if v == "" {
			// Discord rejects fields with an empty value.
			v = blankValue
		}
		em.Fields = append(em.Fields, &discordgo.MessageEmbedField{Name: f.Label, Value: v, Inline: f.Inline})
	}
	return em
}
