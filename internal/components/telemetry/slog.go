package telemetry

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// SlogAPI implements API using the log/slog package.
type SlogAPI struct {
	logger *slog.Logger
	counts metric.Int64Gauge
}

func NewSlogAPI(logger *slog.Logger) SlogAPI {
	if logger == nil {
		logger = slog.Default()
	}
	// the global meter provider is a no-op until Setup is called
	counts, err := otel.Meter("candidatescout").Int64Gauge("report_count")
	if err != nil {
		logger.Warn("failed to create count gauge", "err", err)
	}
	return SlogAPI{logger: logger, counts: counts}
}

func (SlogAPI) formatParams(out *[]any, params []any) {
	for i, p := range params {
		*out = append(
			*out,
			fmt.Sprintf("params.%d", i),
			p,
		)
	}
}

func (s SlogAPI) ReportBroken(id string, params ...any) {
	remainingPairs := []any{"id", id}
	s.formatParams(&remainingPairs, params)
	s.logger.Error("broken component", remainingPairs...)
}

func (s SlogAPI) ReportWarning(id string, params ...any) {
	remainingPairs := []any{"id", id}
	s.formatParams(&remainingPairs, params)
	s.logger.Warn("warning", remainingPairs...)
}

func (s SlogAPI) ReportDebug(message string, params ...any) {
	remainingPairs := []any{}
	s.formatParams(&remainingPairs, params)
	s.logger.Debug(message, remainingPairs...)
}

func (s SlogAPI) ReportCount(id string, count int64) {
	s.logger.Info("count", "id", id, "n", count)
	if s.counts != nil {
		s.counts.Record(context.Background(), count, metric.WithAttributes(attribute.String("id", id)))
	}
}

// InitSlog creates the logger for a single run. Output always goes to stderr
// and is additionally appended to logFile when it is not empty.
// The returned close function must be called once the run is over.
func InitSlog(verbose bool, logFile string) (*slog.Logger, func() error, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	var out io.Writer = os.Stderr
	closeFn := func() error { return nil }

	if logFile != "" {
		err := os.MkdirAll(filepath.Dir(logFile), 0777)
		if err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = io.MultiWriter(os.Stderr, f)
		closeFn = f.Close
	}

	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
	}))
	return logger, closeFn, nil
}
