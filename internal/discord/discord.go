package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
	"pkg.mon.icu/guildly/internal/command"
)

const intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentsMessageContent

type Config struct {
	// guild limits command registration to one guild; 0 registers globally.
	guild uint64
}

func NewConfig(guild uint64) *Config {
	return &Config{guild: guild}
}

// session is the subset of *discordgo.Session used here.
type session interface {
	AddHandler(handler interface{}) func()
	AddHandlerOnce(handler interface{}) func()
	Open() error
	Close() error
	ApplicationCommandCreate(appID string, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

type Discord struct {
	ctx      context.Context
	logger   *zap.Logger
	session  session
	config   *Config
	registry *command.Registry
	env      *command.Env
}

func NewDiscord(ctx context.Context, log *zap.Logger, auth string, config *Config, registry *command.Registry, env *command.Env) (*Discord, error) {
	if !strings.HasPrefix(auth, "Bot ") {
		auth = "Bot " + auth
	}
	s, err := discordgo.New(auth)
	if err != nil {
		return nil, err
	}
	s.Identify.Intents = intents
	return newDiscord(ctx, log, s, config, registry, env), nil
}

func newDiscord(ctx context.Context, log *zap.Logger, s session, config *Config, registry *command.Registry, env *command.Env) *Discord {
	return &Discord{ctx: ctx, logger: log, session: s, config: config, registry: registry, env: env}
}

func (d *Discord) addHandlers() {
	d.session.AddHandlerOnce(d.onReady)
	d.session.AddHandler(d.onInteractionCreate)
}

func (d *Discord) Connect() error {
	d.addHandlers()
	return d.session.Open()
}

func (d *Discord) Close() error {
	return d.session.Close()
}
