package config_fx

import (
	"go.uber.org/fx"
	"newlife/internal/config"
)

var Module = fx.Provide(config.Load)
