package main

import (
	"errors"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gonewx/planewar/internal/logging"
	"github.com/gonewx/planewar/pkg/app"
	"github.com/gonewx/planewar/pkg/config"
)

func main() {
	fs := pflag.NewFlagSet("planewar", pflag.ExitOnError)
	config.RegisterFlags(fs)
	_ = fs.Parse(os.Args[1:])

	v := viper.New()
	if err := config.BindFlags(v, fs); err != nil {
		log.Fatal().Err(err).Msg("failed to bind flags")
	}

	configDir, _ := fs.GetString("config-dir")
	cfg, err := config.Load(v, configDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logging.Setup(cfg.Verbose, os.Stderr)

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("游戏初始化失败")
	}

	w, h := cfg.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetFullscreen(gameApp.Settings().GetSettings().Fullscreen)

	err = ebiten.RunGame(gameApp)
	gameApp.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game loop exited with error")
	}
}
