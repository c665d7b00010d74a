package model

import (
	"errors"
)

// ErrNoName is returned when a guild without a name is about to be written.
var ErrNoName = errors.New("guild has no name")

// Guild is a directory record for one external community.
type Guild struct {
	Name      string    `json:"name"`
	ID        Snowflake `json:"guild_id"`
	InviteURL *URL      `json:"invite_url"`
	IconURL   *URL      `json:"icon_url"`
}

func NewGuild(name string, id Snowflake, invite, icon *URL) *Guild {
	return &Guild{Name: name, ID: id, InviteURL: invite, IconURL: icon}
}

// Validate checks the invariants a record must hold before it is persisted.
func (g *Guild) Validate() error {
	if g.Name == "" {
		return ErrNoName
	}
	return nil
}
