package migrations

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	devenv "candidatescout/dev/env"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// Database selects where candidates are stored, a local sqlite file or
// a remote libsql server when Url is set.
type Database struct {
	File      string `json:"file"`
	Url       string `json:"url"`
	AuthToken string `json:"auth_token"`
}

func (config Database) Open() (*sql.DB, error) {
	if config.Url != "" {
		return OpenRemoteDB(config.Url, config.AuthToken)
	}
	if config.File == "" {
		return nil, wrapOpenDB(fmt.Errorf("a path was not specified"))
	}
	dbpath := config.File
	if strings.HasPrefix(dbpath, devenv.StatePrefix) {
		var err error
		dbpath, err = devenv.ResolvePath(dbpath)
		if err != nil {
			return nil, wrapOpenDB(err)
		}
	}
	return OpenDB(dbpath)
}

func (config Database) OpenAndMigrate(schema string) (*sql.DB, error) {
	db, err := config.Open()
	if err != nil {
		return nil, wrapOpenAndMigrate(err)
	}
	err = Migrate(db, schema)
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func wrapOpenDB(err error) error {
	return fmt.Errorf("open db: %w", err)
}

func OpenDB(path string) (*sql.DB, error) {
	dsn := path
	if path != ":memory:" {
		os.MkdirAll(filepath.Dir(path), 0777)
		dsn = fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, wrapOpenDB(err)
	}

	// see this stackoverflow post for information on why the following
	// lines exist: https://stackoverflow.com/questions/35804884/sqlite-concurrent-writing-performance
	db.SetMaxOpenConns(1)
	if path != ":memory:" {
		_, err = db.Exec("PRAGMA journal_mode=WAL")
		if err != nil {
			db.Close()
			return nil, wrapOpenDB(err)
		}
	}

	return db, nil
}

// OpenRemoteDB connects to a libsql server, `rawUrl` is expected to use
// the libsql://, http:// or https:// scheme.
func OpenRemoteDB(rawUrl, authToken string) (*sql.DB, error) {
	u, err := url.Parse(rawUrl)
	if err != nil {
		return nil, wrapOpenDB(err)
	}
	switch u.Scheme {
	case "libsql", "http", "https", "ws", "wss":
	default:
		return nil, wrapOpenDB(fmt.Errorf("unsupported database url scheme '%s'", u.Scheme))
	}
	if authToken != "" {
		query := u.Query()
		query.Set("authToken", authToken)
		u.RawQuery = query.Encode()
	}

	db, err := sql.Open("libsql", u.String())
	if err != nil {
		return nil, wrapOpenDB(err)
	}
	return db, nil
}

func wrapOpenAndMigrate(err error) error {
	return fmt.Errorf("open and migrate db: %w", err)
}

// Migrate applies the schema, every statement in it must be idempotent.
func Migrate(db *sql.DB, schema string) error {
	_, err := db.Exec(schema)
	if err != nil {
		return wrapOpenAndMigrate(err)
	}
	return nil
}

func OpenAndMigrateDB(schema, path string) (*sql.DB, error) {
	return Database{File: path}.OpenAndMigrate(schema)
}
