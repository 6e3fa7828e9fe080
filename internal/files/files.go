package files

import (
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/ula-apps/appstartup/core/entities"
)

// UlaFiles knows where app scripts and filesystems live under the ula directory.
type UlaFiles struct {
	filesDir     string
	archOverride string
}

func NewUlaFiles(filesDir, archOverride string) *UlaFiles {
	return &UlaFiles{
		filesDir:     filesDir,
		archOverride: archOverride,
	}
}

// ArchType returns the architecture name used by filesystem images.
func (u *UlaFiles) ArchType() string {
	if u.archOverride != "" {
		return u.archOverride
	}
	return archTypeFromGOARCH(runtime.GOARCH)
}

func archTypeFromGOARCH(goarch string) string {
	switch goarch {
	case "arm64":
		return "arm64"
	case "arm":
		return "arm"
	case "amd64":
		return "x86_64"
	case "386":
		return "x86"
	}
	return goarch
}

func (u *UlaFiles) AppScriptPath(appName string) string {
	return filepath.Join(u.filesDir, "apps", appName, appName+".sh")
}

func (u *UlaFiles) FilesystemDir(filesystem entities.Filesystem) string {
	return filepath.Join(u.filesDir, strconv.FormatInt(filesystem.ID, 10))
}

// ProfileDir holds the scripts sourced by login shells inside the filesystem.
func (u *UlaFiles) ProfileDir(filesystem entities.Filesystem) string {
	return filepath.Join(u.FilesystemDir(filesystem), "etc", "profile.d")
}
