package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ChairulIkhsan23/niyyah-backend/internal/service"
	"github.com/ChairulIkhsan23/niyyah-backend/pkg/cleanup"
	"github.com/ChairulIkhsan23/niyyah-backend/pkg/config"
	"github.com/ChairulIkhsan23/niyyah-backend/pkg/logger"
)

func init() {
	service.InitValidator()
}

var CLI struct {
	EnvFile string `help:"Path to the env file." type:"path" default:"${envfile}"`

	Serve   ServeCmd   `cmd:"" help:"Run the HTTP API." default:"1"`
	Migrate MigrateCmd `cmd:"" help:"Apply or roll back database migrations."`
	Warmup  WarmupCmd  `cmd:"" help:"Fill the Islamic content cache and exit."`
}

type appContext struct {
	cfg *config.Config
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("niyyah"),
		kong.Description("Ramadhan observance tracker API"),
		kong.UsageOnError(),
		kong.Vars{"envfile": config.DefaultEnvFile},
	)
	cfg, err := config.Load(CLI.EnvFile)
	if err != nil {
		slog.Error("loading config error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Init(logger.Config{Level: cfg.LogLevel, File: cfg.LogFile})

	err = ctx.Run(&appContext{cfg: cfg})
	cleanup.CleanUp()
	if err != nil {
		slog.Error("command failed", slog.String("command", ctx.Command()), slog.String("error", err.Error()))
		os.Exit(1)
	}
}
