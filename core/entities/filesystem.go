package entities

import "fmt"

const (
	AppsFilesystemName     = "apps"
	DefaultVersionCodeUsed = "v0.0.0"
)

// Filesystem describes a Linux filesystem instance and the credentials used to reach the
// services running inside it.
type Filesystem struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	DistributionType    string `json:"distribution_type"`
	ArchType            string `json:"arch_type"`
	DefaultUsername     string `json:"default_username"`
	DefaultPassword     string `json:"default_password"`
	DefaultVncPassword  string `json:"default_vnc_password"`
	IsAppsFilesystem    bool   `json:"is_apps_filesystem"`
	VersionCodeUsed     string `json:"version_code_used"`
	IsCreatedFromBackup bool   `json:"is_created_from_backup"`
}

// HasCredentials reports whether all three credentials have been set.
func (f Filesystem) HasCredentials() bool {
	return f.DefaultUsername != "" && f.DefaultPassword != "" && f.DefaultVncPassword != ""
}

// String leaves out the credentials so filesystems can be logged safely.
func (f Filesystem) String() string {
	return fmt.Sprintf("Filesystem(id=%d, name=%s, distributionType=%s, archType=%s, isAppsFilesystem=%t, versionCodeUsed=%s, isCreatedFromBackup=%t)",
		f.ID, f.Name, f.DistributionType, f.ArchType, f.IsAppsFilesystem, f.VersionCodeUsed, f.IsCreatedFromBackup)
}

// NewAppsFilesystem builds the record inserted the first time an app needing distributionType
// is selected.
func NewAppsFilesystem(distributionType, archType, versionCode string) Filesystem {
	if versionCode == "" {
		versionCode = DefaultVersionCodeUsed
	}
	return Filesystem{
		Name:             AppsFilesystemName,
		DistributionType: distributionType,
		ArchType:         archType,
		IsAppsFilesystem: true,
		VersionCodeUsed:  versionCode,
	}
}
