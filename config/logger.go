package config

import "go.uber.org/zap"

// NewLogger returns a production logger in production and a development
// logger everywhere else.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
