package impl

import (
	"io"
	"log/slog"

	"dashbi/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		ContaAzul: &config.ContaAzulConfig{
			SyncPageSize: 20,
		},
	}
}
