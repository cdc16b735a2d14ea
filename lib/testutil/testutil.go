package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	devenv "candidatescout/dev/env"
	"candidatescout/pkg/migrations"
)

type DBParams struct {
	// if unspecified, it will skip applying a schema
	Schema string
	// if unspecified, it will use `:memory:`
	Path string
}

// SetupDB opens a migrated sqlite database that is closed when the test ends.
func SetupDB(t testing.TB, params DBParams) *sql.DB {
	t.Helper()

	dbpath := ":memory:"
	if params.Path != "" && params.Path != ":memory:" {
		var err error
		dbpath, err = devenv.ResolvePath(params.Path)
		if err != nil {
			t.Fatal(err)
		}
	}
	db, err := migrations.OpenDB(dbpath)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	if params.Schema != "" {
		err = migrations.Migrate(db, params.Schema)
		if err != nil {
			t.Fatal(err)
		}
	}
	return db
}

type ReportKind int

const (
	ReportBroken ReportKind = iota
	ReportWarning
	ReportDebug
	ReportCount
)

type Report struct {
	Kind   ReportKind
	ID     string
	Params []any
}

// Telemetry is a telemetry.API that keeps every report and echoes it to
// the test log.
type Telemetry struct {
	t       testing.TB
	mutex   sync.Mutex
	reports []Report
}

func NewTelemetry(t testing.TB) *Telemetry {
	return &Telemetry{t: t}
}

func (r *Telemetry) record(kind ReportKind, id string, params []any) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.reports = append(r.reports, Report{Kind: kind, ID: id, Params: params})
	r.t.Log(id, fmt.Sprint(params...))
}

func (r *Telemetry) ReportBroken(id string, params ...any) {
	r.record(ReportBroken, id, params)
}

func (r *Telemetry) ReportWarning(id string, params ...any) {
	r.record(ReportWarning, id, params)
}

func (r *Telemetry) ReportDebug(msg string, params ...any) {
	r.record(ReportDebug, msg, params)
}

func (r *Telemetry) ReportCount(id string, count int64) {
	r.record(ReportCount, id, []any{count})
}

// Reports returns every report of the given kind with the given id.
func (r *Telemetry) Reports(kind ReportKind, id string) []Report {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	var out []Report
	for _, rep := range r.reports {
		if rep.Kind == kind && rep.ID == id {
			out = append(out, rep)
		}
	}
	return out
}

// Clock is a chrono.TimeAPI whose sleeps return immediately and are
// recorded instead.
type Clock struct {
	mutex  sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

func (c *Clock) Now() time.Time {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.now
}

func (c *Clock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	return nil
}

func (c *Clock) Sleeps() []time.Duration {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return append([]time.Duration(nil), c.sleeps...)
}
