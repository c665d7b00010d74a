package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func newRootCommand(lcf zap.Config, log *zap.Logger) *cobra.Command {
	v := viper.New()
	var file string

	root := &cobra.Command{
		Use:           "guildly",
		Short:         "Discord directory of partner servers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&file, "config", "", "config file (default ./config.yaml if present)")
	root.PersistentFlags().String("database", "", "database DSN (default guildly.db)")
	root.PersistentFlags().String("driver", "", "database driver, sqlite3 or pgx (default sqlite3)")
	_ = v.BindPFlag("storage.dsn", root.PersistentFlags().Lookup("database"))
	_ = v.BindPFlag("storage.driver", root.PersistentFlags().Lookup("driver"))

	// withApp opens the app for one subcommand and closes it afterwards.
	withApp := func(cmd *cobra.Command, fn func(a *app) error) error {
		a, err := newApp(cmd.Context(), lcf, log, v, file)
		if err != nil {
			return err
		}
		defer a.Close()
		return fn(a)
	}

	var exportFile string
	export := &cobra.Command{
		Use:   "export",
		Short: "Write every guild to a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(a *app) error { return a.Export(exportFile) })
		},
	}
	export.Flags().StringVar(&exportFile, "file", "", "output file")
	_ = export.MarkFlagRequired("file")

	var importFile string
	imp := &cobra.Command{
		Use:   "import",
		Short: "Upsert every guild from a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(a *app) error { return a.Import(importFile) })
		},
	}
	imp.Flags().StringVar(&importFile, "file", "", "input file")
	_ = imp.MarkFlagRequired("file")

	run := &cobra.Command{
		Use:   "run",
		Short: "Start the bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(a *app) error { return a.Run() })
		},
	}
	run.Flags().String("token", "", "Discord bot token (or CONF_DISCORD_AUTH)")
	_ = v.BindPFlag("discord.auth", run.Flags().Lookup("token"))

	root.AddCommand(export, imp, run)
	return root
}
