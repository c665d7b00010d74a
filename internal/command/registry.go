package command

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
	"pkg.mon.icu/guildly/internal/display"
)

var (
	// ErrUnknownCommand is returned by Dispatch when no command has the requested name.
	ErrUnknownCommand = errors.New("command not found")
	// ErrUnexpectedOption is returned for options of a type no command declares.
	ErrUnexpectedOption = errors.New("unexpected option")
)

// Registry maps command names to commands. It is safe for concurrent use.
type Registry struct {
	logger   *zap.Logger
	mu       sync.RWMutex
	commands map[string]Command
}

func NewRegistry(log *zap.Logger, cmds ...Command) *Registry {
	r := &Registry{logger: log, commands: make(map[string]Command, len(cmds))}
	for _, c := range cmds {
		r.Register(c)
	}
	return r
}

// Register adds cmd under cmd.Name(). Registering a name twice replaces the
// earlier command: the last registration wins.
func (r *Registry) Register(cmd Command) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.commands[cmd.Name()]; exists {
		r.logger.Sugar().Warnf("Replacing previously registered command %s.", cmd.Name())
	} else {
		r.logger.Sugar().Debugf("Registered command %s.", cmd.Name())
	}
	r.commands[cmd.Name()] = cmd
}

func (r *Registry) Get(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmd, ok := r.commands[name]
	return cmd, ok
}

// Commands returns the registered commands ordered by name.
func (r *Registry) Commands() []Command {
	r.mu.RLock()
	cmds := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		cmds = append(cmds, c)
	}
	r.mu.RUnlock()

	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })
	return cmds
}

// Dispatch runs the command registered under name.
func (r *Registry) Dispatch(ctx context.Context, env *Env, name string, args *Args) (*display.Payload, error) {
	cmd, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	if args == nil {
		args = &Args{}
	}

	p, err := cmd.Execute(ctx, env, args)
	if err != nil {
		return nil, fmt.Errorf("command %s failed: %w", name, err)
	}
	return p, nil
}
