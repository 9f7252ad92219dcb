package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/thenoetrevino/remark/internal/collection"
	"github.com/thenoetrevino/remark/internal/config"
	"github.com/thenoetrevino/remark/internal/database"
	"github.com/thenoetrevino/remark/internal/events"
	"github.com/thenoetrevino/remark/internal/ids"
	"github.com/thenoetrevino/remark/internal/models"
	"github.com/thenoetrevino/remark/internal/storage"
)

// authorDirName is the diskv directory used by the file author store
const authorDirName = "authors"

// App holds the comment collection and the stores behind it.
// This is the main application container that manages their lifecycles.
type App struct {
	Config *config.Config

	// Comments is the collection new comments are handed to. Every Add is
	// mirrored to the database.
	Comments *collection.Collection

	// Authors remembers the last committed author
	Authors *storage.LastAuthor

	// IDs identifies comments on their first commit
	IDs ids.Generator

	repo   *database.CommentRepo
	db     *sql.DB
	ownsDB bool
	mirror *events.Subscription
	logger *slog.Logger
}

// New opens the configured database, loads the stored comments and wires
// the author store and id strategy chosen in cfg.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	options := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}

	a := &App{
		Config: cfg,
		db:     options.db,
		logger: options.logger,
	}

	if a.db == nil {
		dbPath, err := cfg.ResolvedDBPath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve database path: %w", err)
		}
		db, err := database.InitDB(ctx, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		a.db = db
		a.ownsDB = true
	}

	a.repo = database.NewCommentRepo(a.db)
	stored, err := a.repo.List(ctx)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	records := make([]models.Record, 0, len(stored))
	for _, c := range stored {
		records = append(records, c)
	}
	a.Comments = collection.New(records...)
	a.mirror = a.repo.Mirror(a.Comments)

	a.Authors = storage.NewLastAuthor(a.authorStore())
	a.IDs = a.idGenerator()

	a.logger.Debug("app initialized",
		"comments", a.Comments.Len(),
		"author_store", cfg.Storage.AuthorStore,
		"ids", cfg.IDs.Strategy,
	)
	return a, nil
}

// authorStore builds the configured last-author backend. A file store that
// cannot be created degrades to an unavailable one.
func (a *App) authorStore() storage.Store {
	switch a.Config.Storage.AuthorStore {
	case config.AuthorStoreSQLite:
		return database.NewKVStore(a.db)
	case config.AuthorStoreFile:
		dir, err := a.Config.ResolvedDataDir()
		if err != nil {
			a.logger.Debug("file author store unavailable", "error", err)
			return storage.Unavailable{}
		}
		disk, err := storage.NewDisk(filepath.Join(dir, authorDirName))
		if err != nil {
			a.logger.Debug("file author store unavailable", "error", err)
			return storage.Unavailable{}
		}
		return disk
	case config.AuthorStoreMemory:
		return storage.NewMemory()
	default:
		return storage.Unavailable{}
	}
}

func (a *App) idGenerator() ids.Generator {
	if a.Config.IDs.Strategy == config.IDStrategySQLite {
		return database.NewIDSequence(a.db)
	}
	return ids.UUID{}
}

// Repo returns the comment repository
func (a *App) Repo() *database.CommentRepo {
	return a.repo
}

// Close stops mirroring and closes the database if the app opened it
func (a *App) Close() error {
	a.mirror.Release()
	if !a.ownsDB || a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}
