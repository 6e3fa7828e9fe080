package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

// Database is the sqlite store holding filesystem and session records.
type Database struct {
	db     *gorm.DB
	logger *zerolog.Logger

	filesystems *FilesystemDao
	sessions    *SessionDao
}

// NewDatabase opens (creating if needed) the sqlite database at path and migrates its tables.
// The returned function closes the database.
func NewDatabase(path string, logger *zerolog.Logger) (*Database, func() error, error) {
	err := os.MkdirAll(filepath.Dir(path), 0700)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating database directory: %w", err)
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.New(logger, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("error opening database %s: %w", path, err)
	}

	err = gdb.AutoMigrate(&filesystemModel{}, &sessionModel{})
	if err != nil {
		return nil, nil, fmt.Errorf("error migrating database %s: %w", path, err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, nil, err
	}
	// sqlite allows a single writer
	sqlDB.SetMaxOpenConns(1)

	logger.Debug().Str("path", path).Msg("opened database")

	d := &Database{
		db:          gdb,
		logger:      logger,
		filesystems: &FilesystemDao{db: gdb},
		sessions:    &SessionDao{db: gdb},
	}
	return d, sqlDB.Close, nil
}

func (d *Database) Filesystems() *FilesystemDao {
	return d.filesystems
}

func (d *Database) Sessions() *SessionDao {
	return d.sessions
}
