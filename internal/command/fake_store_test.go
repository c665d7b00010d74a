package command

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pkg.mon.icu/guildly/internal/links"
	"pkg.mon.icu/guildly/internal/storage/model"
)

var errStorage = errors.New("disk on fire")

// fakeStore keeps guilds in memory and can be told to fail.
type fakeStore struct {
	mu     sync.Mutex
	guilds map[model.Snowflake]model.Guild
	fail   bool
}

func newFakeStore(gs ...*model.Guild) *fakeStore {
	s := &fakeStore{guilds: make(map[model.Snowflake]model.Guild)}
	for _, g := range gs {
		s.guilds[g.ID] = *g
	}
	return s
}

func (s *fakeStore) Upsert(_ context.Context, g *model.Guild) (*model.Guild, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, errStorage
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	old, ok := s.guilds[g.ID]
	s.guilds[g.ID] = *g
	if !ok {
		return nil, nil
	}
	return &old, nil
}

func (s *fakeStore) Get(_ context.Context, id model.Snowflake) (*model.Guild, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, errStorage
	}
	g, ok := s.guilds[id]
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (s *fakeStore) Remove(_ context.Context, id model.Snowflake) (*model.Guild, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, errStorage
	}
	g, ok := s.guilds[id]
	if !ok {
		return nil, nil
	}
	delete(s.guilds, id)
	return &g, nil
}

func (s *fakeStore) Search(_ context.Context, name string) ([]*model.Guild, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, errStorage
	}
	var out []*model.Guild
	for _, g := range s.guilds {
		if strings.Contains(strings.ToLower(g.Name), strings.ToLower(name)) {
			g := g
			out = append(out, &g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func newTestEnv(gs ...*model.Guild) (*Env, *fakeStore) {
	s := newFakeStore(gs...)
	return &Env{Store: s, Links: links.NewExtractor()}, s
}

func opts(kv ...string) *Args {
	a := &Args{Options: make(map[string]string)}
	for i := 0; i+1 < len(kv); i += 2 {
		a.Options[kv[i]] = kv[i+1]
	}
	return a
}
