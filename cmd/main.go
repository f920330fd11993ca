package main

import (
	"flag"
	"fmt"
	"os"

	botsqlite "statserver/bot/botstorage/sqlite"
	"statserver/bot/tgbot"
	"statserver/internal/config"
	"statserver/internal/logger"
	"statserver/internal/service"
	"statserver/internal/storage/sqlite"
	"statserver/internal/web"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	var serverConfigPath, botConfigPath string
	flag.StringVar(&serverConfigPath, "server-config", "configs/server.toml", "path to server config")
	flag.StringVar(&botConfigPath, "bot-config", "configs/bot.toml", "path to bot config")
	flag.Parse()

	cfg, err := config.Parse(serverConfigPath, botConfigPath)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	playerStorage, err := sqlite.New(cfg.Server, log)
	if err != nil {
		return err
	}
	defer playerStorage.Close()

	playerService := service.New(playerStorage, cfg.Server, log)

	if cfg.TgBot.Enabled {
		botStorage, err := botsqlite.New(log, cfg.TgBot)
		if err != nil {
			return err
		}
		defer botStorage.Close()
		bot, err := tgbot.New(playerService, botStorage, cfg, log)
		if err != nil {
			return err
		}
		go bot.Run()
		defer bot.Stop()
	}

	server, err := web.New(playerService, cfg.Server, log)
	if err != nil {
		return err
	}
	return server.Serve()
}
