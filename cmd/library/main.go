package main

import (
	stdLog "log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/library-catalog/library/app"
	"github.com/Astemirdum/library-catalog/library/config"
)

// @title Library catalog API
// @version 1.0
// @BasePath /api/v1
func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLog.Fatal("load envs from .env ", err)
	}
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		logLevel string
		dbDriver string
	)
	newConfig := func() (*config.Config, error) {
		level, err := zapcore.ParseLevel(logLevel)
		if err != nil {
			return nil, err
		}
		opts := []config.Option{
			config.WithLogLevel(level),
			config.WithWriteTimeout(time.Minute),
		}
		if dbDriver != "" {
			opts = append(opts, config.WithDBDriver(dbDriver))
		}
		return config.NewConfig(opts...), nil
	}

	serve := func(_ *cobra.Command, _ []string) error {
		cfg, err := newConfig()
		if err != nil {
			return err
		}
		return app.Run(cfg)
	}

	root := &cobra.Command{
		Use:          "library",
		Short:        "Library catalog REST service",
		SilenceUsage: true,
		RunE:         serve,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "debug", "log level")
	root.PersistentFlags().StringVar(&dbDriver, "db-driver", "", "database driver when DB_DRIVER is unset: pgx or sqlite3")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE:  serve,
	})
	root.AddCommand(&cobra.Command{
		Use:       "migrate [up|down|status|version|redo|reset]",
		Short:     "Run database migrations",
		Args:      cobra.RangeArgs(0, 2),
		ValidArgs: []string{"up", "down", "status", "version", "redo", "reset"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := newConfig()
			if err != nil {
				return err
			}
			command := "up"
			if len(args) > 0 {
				command, args = args[0], args[1:]
			}
			return app.Migrate(cfg, command, args...)
		},
	})
	return root
}
