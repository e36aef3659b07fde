package config

import (
	"fmt"
	"os"

	"github.com/creasty/defaults"
)

type GlobalConfig struct {
	HTTP HTTP `mapstructure:",squash"`
	RPC  RPC  `mapstructure:",squash"`
	Log  Log  `mapstructure:",squash"`
}

var config = &GlobalConfig{}

func init() {
	if err := defaults.Set(config); err != nil {
		fmt.Printf("set default err: %+v", err)
		os.Exit(1)
	}
}

func Global() *GlobalConfig {
	return config
}
