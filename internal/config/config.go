package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

type Server struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	Debug       bool   `toml:"debug_mode"`
	SqliteFile  string `toml:"sqlite_file"`
	SearchLimit int    `toml:"search_limit"`
}

type TgBot struct {
	Enabled          bool   `toml:"enabled"`
	TelegramApiToken string `toml:"telegram_apitoken"`
	SqliteFile       string `toml:"sqlite_file"`
}

type Config struct {
	Server Server
	TgBot  TgBot
}

const defaultSearchLimit = 100

func New() (Config, error) {
	return Parse("configs/server.toml", "configs/bot.toml")
}

func Parse(serverPath string, botPath string) (Config, error) {
	var serverCfg Server
	_, err := toml.DecodeFile(serverPath, &serverCfg)
	if err != nil {
		return Config{}, err
	}
	if serverCfg.SearchLimit <= 0 {
		serverCfg.SearchLimit = defaultSearchLimit
	}

	var tgBotCfg TgBot
	_, err = toml.DecodeFile(botPath, &tgBotCfg)
	if err != nil {
		return Config{}, err
	}
	token := os.Getenv("TELEGRAM_APITOKEN")
	if token != "" {
		tgBotCfg.TelegramApiToken = token
	}

	return Config{
		Server: serverCfg,
		TgBot:  tgBotCfg,
	}, nil
}
