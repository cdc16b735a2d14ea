package globals

import (
	"context"
	"log/slog"

	"candidatescout/cmd/scout/config"
	"candidatescout/internal/components/chrono"
	"candidatescout/internal/components/telemetry"
)

type key struct{}

type Value struct {
	Config config.Config
	Logger *slog.Logger
	Tel    telemetry.API
	Time   chrono.TimeAPI
}

func Set(ctx context.Context, value *Value) context.Context {
	return context.WithValue(ctx, key{}, value)
}

func Get(ctx context.Context) *Value {
	return ctx.Value(key{}).(*Value)
}
