package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mentorpal/mentor-graphql-sub001/pkg/config"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/logger"
)

// @title Mentor API
// @version 1.0
// @description バーチャルメンターの権限管理 REST API
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	root := &cobra.Command{
		Use:           "mentor-api",
		Short:         "Virtual mentor API server",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(
		serveCmd(),
		migrateCmd(),
		tokenCmd(),
	)

	if err := root.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// loadConfig は設定を読み込み、ロガーを初期化します
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.Log.Level
	logCfg.Format = cfg.Log.Format
	if err := logger.Setup(logCfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
