package startup

import (
	"context"

	"github.com/ula-apps/appstartup/core/entities"
)

//go:generate mockgen -source=collaborators.go -destination=mocks/mock_collaborators.go -package=mocks

// FilesystemStore persists filesystem records.
type FilesystemStore interface {
	// FindAppsFilesystemByType returns the apps filesystems with the given distribution type.
	FindAppsFilesystemByType(ctx context.Context, distributionType string) ([]entities.Filesystem, error)
	// InsertFilesystem stores a new record and returns the id assigned to it.
	InsertFilesystem(ctx context.Context, filesystem entities.Filesystem) (int64, error)
	UpdateFilesystem(ctx context.Context, filesystem entities.Filesystem) error
}

// SessionStore persists session records.
type SessionStore interface {
	// FindAppsSession returns the apps sessions named after the given app.
	FindAppsSession(ctx context.Context, appName string) ([]entities.Session, error)
	// InsertSession stores a new record and returns the id assigned to it.
	InsertSession(ctx context.Context, session entities.Session) (int64, error)
	UpdateSession(ctx context.Context, session entities.Session) error
}

// ScriptInstaller copies an app's launch script into the storage location of a filesystem.
type ScriptInstaller interface {
	MoveAppScriptToRequiredLocation(ctx context.Context, appName string, filesystem entities.Filesystem) error
}

// EnvironmentInfo describes the host the filesystems run on.
type EnvironmentInfo interface {
	ArchType() string
}
