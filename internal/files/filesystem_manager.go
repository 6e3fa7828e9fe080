package files

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/ula-apps/appstartup/core/entities"
	"github.com/ula-apps/appstartup/internal/startup"
)

const AppScriptName = "AppScript.sh"

var ErrScriptNotFound = errors.New("app script not found")

type FilesystemManager struct {
	files  *UlaFiles
	logger *zerolog.Logger
}

var _ startup.ScriptInstaller = &FilesystemManager{}

func NewFilesystemManager(files *UlaFiles, logger *zerolog.Logger) *FilesystemManager {
	return &FilesystemManager{
		files:  files,
		logger: logger,
	}
}

// MoveAppScriptToRequiredLocation installs the app's script into the filesystem's profile.d
// directory, replacing any script a previous app left there.
func (m *FilesystemManager) MoveAppScriptToRequiredLocation(ctx context.Context, appName string, filesystem entities.Filesystem) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	source := m.files.AppScriptPath(appName)
	target := filepath.Join(m.files.ProfileDir(filesystem), AppScriptName)

	in, err := os.Open(source)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrScriptNotFound, source)
	} else if err != nil {
		return err
	}
	defer in.Close()

	err = os.MkdirAll(filepath.Dir(target), 0755)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", filepath.Dir(target), err)
	}

	// a failed copy leaves the previous script in place
	tmp, err := os.CreateTemp(filepath.Dir(target), "."+AppScriptName+"-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	_, err = io.Copy(tmp, in)
	if err != nil {
		tmp.Close()
		return fmt.Errorf("error copying %s: %w", source, err)
	}
	err = tmp.Close()
	if err != nil {
		return err
	}

	err = os.Chmod(tmp.Name(), 0755)
	if err != nil {
		return err
	}

	err = os.Rename(tmp.Name(), target)
	if err != nil {
		return err
	}

	m.logger.Debug().Str("app", appName).Str("target", target).Msg("installed app script")
	return nil
}
