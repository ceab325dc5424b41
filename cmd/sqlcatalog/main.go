package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/koba/sqlcatalog/internal/config"
	"github.com/koba/sqlcatalog/internal/database"
	"github.com/koba/sqlcatalog/internal/logger"
	"github.com/koba/sqlcatalog/internal/report"
)

var (
	cfgFile string
	output  string
	cfg     *config.Config
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("")
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "sqlcatalog",
	Short:         "SQL Server catalog inspection tool",
	Long:          `Read SQL Server catalog views and DMVs as typed rows, snapshot them and compare snapshots.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().String("log-format", logger.FormatText, "logging format [text|json]")
	rootCmd.PersistentFlags().String("log-level", zerolog.LevelInfoValue,
		fmt.Sprintf(
			"logging level %s|%s|%s|%s",
			zerolog.LevelDebugValue,
			zerolog.LevelInfoValue,
			zerolog.LevelWarnValue,
			zerolog.LevelErrorValue,
		),
	)
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", string(report.FormatTable), "output format [table|json|yaml]")

	if err := viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format")); err != nil {
		log.Fatal().Err(err).Msg("")
	}
	if err := viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		log.Fatal().Err(err).Msg("")
	}

	rootCmd.AddCommand(viewsCmd)
	rootCmd.AddCommand(objectTypeCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(snapshotsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(deleteCmd)
}

func initConfig() {
	var err error
	cfg, err = config.Load(viper.GetViper(), cfgFile)
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
	if _, err := logger.SetDefaultContextLogger(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}

func newWriter(w io.Writer) (*report.Writer, error) {
	return report.New(w, report.Format(output))
}

// openSource connects to the server named by the source section.
func openSource(ctx context.Context) (database.Database, error) {
	db, err := database.NewDatabase(cfg.Source)
	if err != nil {
		return nil, err
	}
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}
