package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"pkg.mon.icu/guildly/internal/api"
	"pkg.mon.icu/guildly/internal/command"
	"pkg.mon.icu/guildly/internal/config"
	"pkg.mon.icu/guildly/internal/discord"
	"pkg.mon.icu/guildly/internal/links"
	"pkg.mon.icu/guildly/internal/storage"
)

type app struct {
	ctx context.Context

	logConf zap.Config
	logger  *zap.Logger

	config *config.Config

	storage *storage.Storage
}

func newApp(ctx context.Context, lcf zap.Config, log *zap.Logger, v *viper.Viper, file string) (*app, error) {
	a := &app{ctx: ctx, logConf: lcf, logger: log}
	var err error

	log.Debug("Loading configuration.")
	a.config, err = config.ReadFrom(v, file)
	if err != nil {
		return nil, fmt.Errorf("couldn't load configuration: %w", err)
	}

	log.Debug("Successfully loaded configuration (also switching log level.)")
	lcf.Level.SetLevel(a.config.Logging.Level)

	log.Sugar().Debugf("Opening %s storage.", a.config.Storage.Driver)
	a.storage, err = storage.Open(ctx, log, a.config.Storage.Driver, a.config.Storage.DSN)
	if err != nil {
		return nil, fmt.Errorf("couldn't open storage: %w", err)
	}
	log.Debug("Successfully opened storage.")

	return a, nil
}

func (a *app) Close() {
	a.logger.Debug("Closing storage.")
	if err := a.storage.Close(); err != nil {
		a.logger.Sugar().Errorf("Couldn't close storage: %s.", err)
	}
	a.logger.Debug("Closed storage.")
}

func (a *app) Export(file string) error {
	gs, err := a.storage.Export(a.ctx)
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("couldn't create %s: %w", file, err)
	}
	if err := storage.WriteSnapshot(f, gs); err != nil {
		_ = f.Close()
		return fmt.Errorf("couldn't write %s: %w", file, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("couldn't close %s: %w", file, err)
	}

	a.logger.Sugar().Infof("Exported %d guilds to %s.", len(gs), file)
	return nil
}

func (a *app) Import(file string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("couldn't open %s: %w", file, err)
	}
	defer f.Close()

	gs, err := storage.ReadSnapshot(f)
	if err != nil {
		return err
	}
	return a.storage.Import(a.ctx, gs)
}

func (a *app) Run() error {
	if a.config.Discord.Auth == "" {
		return errors.New("no Discord token given")
	}

	registry := command.NewRegistry(a.logger, command.Defaults()...)
	env := &command.Env{Store: a.storage, Links: links.NewExtractor(a.config.Links.Hosts...)}

	a.logger.Debug("Initializing Discord struct.")
	d, err := discord.NewDiscord(a.ctx, a.logger, a.config.Discord.Auth, discord.NewConfig(a.config.Discord.Guild), registry, env)
	if err != nil {
		return fmt.Errorf("couldn't initialize Discord struct: %w", err)
	}

	a.logger.Debug("Connecting to Discord API gateway.")
	if err := d.Connect(); err != nil {
		return fmt.Errorf("couldn't connect to Discord: %w", err)
	}
	defer func() {
		a.logger.Debug("Closing connection with Discord API gateway.")
		if err := d.Close(); err != nil {
			a.logger.Sugar().Errorf("Couldn't close Discord: %s.", err)
		}
		a.logger.Debug("Closed connection with Discord API gateway.")
	}()
	a.logger.Debug("Successfully connected to Discord API gateway.")

	if a.config.Api.Port > 0 {
		s := api.NewAPI(a.ctx, a.logger.Sugar(), a.storage, api.NewConfig(a.config.Api.Port))
		s.Listen()
		defer func() {
			if err := s.Close(); err != nil {
				a.logger.Sugar().Errorf("Couldn't close HTTP server: %s.", err)
			}
		}()
	}

	a.logger.Info("Launch complete. Send SIGINT to gracefully terminate.")
	<-a.ctx.Done()
	a.logger.Info("Signal received, terminating.")

	return a.ctx.Err()
}
