package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const EnvProduction = "production"

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"LOG_FILE" env-default:"tictaptoe.log"`

	Env                 string `yaml:"env" env:"APP_ENV" env-default:"development"`
	ServerURL           string `yaml:"server-url" env:"SERVER_URL" env-default:"ws://localhost:3000/ws"`
	ProductionServerURL string `yaml:"production-server-url" env:"PRODUCTION_SERVER_URL" env-default:"wss://tictaptoe-socket.onrender.com/ws"`

	ReconnectAttempts int           `yaml:"reconnect-attempts" env:"RECONNECT_ATTEMPTS" env-default:"5"`
	ReconnectDelay    time.Duration `yaml:"reconnect-delay" env:"RECONNECT_DELAY" env-default:"1s"`
	PingInterval      time.Duration `yaml:"ping-interval" env:"PING_INTERVAL" env-default:"20s"`
	AckTimeout        time.Duration `yaml:"ack-timeout" env:"ACK_TIMEOUT" env-default:"5s"`

	// HTTPPort enables the diagnostics server when set.
	HTTPPort   string `yaml:"http-port" env:"HTTP_PORT"`
	StartRoute string `yaml:"start-route" env:"START_ROUTE" env-default:"/"`

	Redis   Redis   `yaml:"redis"`
	History History `yaml:"history"`
	Sound   Sound   `yaml:"sound"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Switches default to false: cleanenv cannot tell an explicit false from
// an unset key.
type History struct {
	Disabled bool `yaml:"disabled" env:"HISTORY_DISABLED"`
	Limit    int  `yaml:"limit" env:"HISTORY_LIMIT" env-default:"20"`
}

type Sound struct {
	Muted bool `yaml:"muted" env:"SOUND_MUTED"`
	Tap   bool `yaml:"tap" env:"SOUND_TAP"`
}

// MustLoad - load all configurations in config.yml file. Without the file
// the configuration comes from the environment and the defaults.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// GameServerURL selects the server for the current environment.
func (that *Config) GameServerURL() string {
	if that.Env == EnvProduction && that.ProductionServerURL != "" {
		return that.ProductionServerURL
	}

	return that.ServerURL
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
