package config

import (
	"flag"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Address    string `env:"RUN_ADDRESS"  envDefault:"localhost:1234"`
	OpsAddress string `env:"OPS_ADDRESS"  envDefault:"localhost:8080"`
	DataDir    string `env:"DATA_DIR"     envDefault:"data"`
	LogLvl     string `env:"LOG_LVL"      envDefault:"info"`
}

func New() *Config {
	cfg := &Config{}

	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to accept client connections on")
	flag.StringVar(&cfg.OpsAddress, "o", cfg.OpsAddress, "address and port for the operational http endpoints")
	flag.StringVar(&cfg.DataDir, "d", cfg.DataDir, "directory holding the persisted record stores")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.Parse()

	return cfg
}
