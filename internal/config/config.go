package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string        `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string        `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	GameTTL    time.Duration `yaml:"game-ttl" env:"GAME_TTL" env-default:"24h"`
	PlayerTTL  time.Duration `yaml:"player-ttl" env:"PLAYER_TTL" env-default:"720h"`
	Redis      Redis         `yaml:"redis"`
	Bot        Bot           `yaml:"bot"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Bot struct {
	// TurnDelay - pause before the bot replies, so its moves don't appear instantly.
	TurnDelay time.Duration `yaml:"turn-delay" env:"BOT_TURN_DELAY" env-default:"500ms"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file, then applies environment overrides and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
