package storage

import (
	"encoding/json"
	"fmt"
	"io"

	"pkg.mon.icu/guildly/internal/storage/model"
)

// WriteSnapshot writes gs as a pretty-printed JSON array.
func WriteSnapshot(w io.Writer, gs []*model.Guild) error {
	if gs == nil {
		gs = []*model.Guild{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(gs)
}

// ReadSnapshot reads a JSON array written by WriteSnapshot. URLs are
// validated as they are decoded.
func ReadSnapshot(r io.Reader) ([]*model.Guild, error) {
	var gs []*model.Guild
	if err := json.NewDecoder(r).Decode(&gs); err != nil {
		return nil, fmt.Errorf("couldn't decode snapshot: %w", err)
	}
	for i, g := range gs {
		if g == nil {
			return nil, fmt.Errorf("snapshot entry %d is null", i)
		}
	}
	return gs, nil
}
