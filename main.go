package SQLExplorer

import (
	"log/slog"

	"github.com/nickyhof/SQLExplorer/core"
	"github.com/nickyhof/SQLExplorer/db"
	"github.com/nickyhof/SQLExplorer/ps"
	"github.com/nickyhof/SQLExplorer/store"
)

type Options struct {
	Driver string
	DSN    string

	// Journal enables the commit journal. An empty JournalDir keeps it in
	// memory for the lifetime of the instance.
	Journal    bool
	JournalDir string

	Identity core.Identity
	S3       *db.S3Config
	Logger   *slog.Logger
}

type Instance struct {
	Store       *store.DB
	Persistence *ps.Persistence

	options Options
}

func Open(options Options) (*Instance, error) {
	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	conn, err := store.Open(options.Driver, options.DSN)
	if err != nil {
		return nil, err
	}

	instance := &Instance{Store: conn, options: options}

	if options.Journal {
		var persistence *ps.Persistence
		if options.JournalDir == "" {
			persistence, err = ps.NewMemoryPersistence()
		} else {
			persistence, err = ps.NewFilePersistence(options.JournalDir)
		}
		if err != nil {
			conn.Close()
			return nil, err
		}
		instance.Persistence = persistence
	}

	options.Logger.Debug("store opened", "driver", conn.Driver(), "journal", options.Journal)
	return instance, nil
}

// Engine returns an engine bound to the instance's connection. Closing the
// engine closes the connection.
func (instance *Instance) Engine() *db.Engine {
	opts := []db.Option{
		db.WithLogger(instance.options.Logger),
		db.WithIdentity(instance.options.Identity),
		db.WithS3Config(instance.options.S3),
	}
	if instance.Persistence != nil {
		opts = append(opts, db.WithJournal(instance.Persistence))
	}
	return db.NewEngine(instance.Store, opts...)
}

func (instance *Instance) Close() error {
	return instance.Store.Close()
}
