package db

import (
	"github.com/ula-apps/appstartup/core/entities"
)

type filesystemModel struct {
	ID                  int64  `gorm:"primaryKey;autoIncrement"`
	Name                string `gorm:"type:text;not null"`
	DistributionType    string `gorm:"type:text;not null;index"`
	ArchType            string `gorm:"type:text;not null"`
	DefaultUsername     string `gorm:"type:text;not null"`
	DefaultPassword     string `gorm:"type:text;not null"`
	DefaultVncPassword  string `gorm:"type:text;not null"`
	IsAppsFilesystem    bool   `gorm:"not null"`
	VersionCodeUsed     string `gorm:"type:text;not null"`
	IsCreatedFromBackup bool   `gorm:"not null"`
}

func (filesystemModel) TableName() string { return "filesystem" }

func newFilesystemModel(fs entities.Filesystem) filesystemModel {
	return filesystemModel{
		ID:                  fs.ID,
		Name:                fs.Name,
		DistributionType:    fs.DistributionType,
		ArchType:            fs.ArchType,
		DefaultUsername:     fs.DefaultUsername,
		DefaultPassword:     fs.DefaultPassword,
		DefaultVncPassword:  fs.DefaultVncPassword,
		IsAppsFilesystem:    fs.IsAppsFilesystem,
		VersionCodeUsed:     fs.VersionCodeUsed,
		IsCreatedFromBackup: fs.IsCreatedFromBackup,
	}
}

func (m filesystemModel) entity() entities.Filesystem {
	return entities.Filesystem{
		ID:                  m.ID,
		Name:                m.Name,
		DistributionType:    m.DistributionType,
		ArchType:            m.ArchType,
		DefaultUsername:     m.DefaultUsername,
		DefaultPassword:     m.DefaultPassword,
		DefaultVncPassword:  m.DefaultVncPassword,
		IsAppsFilesystem:    m.IsAppsFilesystem,
		VersionCodeUsed:     m.VersionCodeUsed,
		IsCreatedFromBackup: m.IsCreatedFromBackup,
	}
}

type sessionModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Name           string `gorm:"type:text;not null;index"`
	FilesystemID   int64  `gorm:"not null"`
	FilesystemName string `gorm:"type:text;not null"`
	Active         bool   `gorm:"not null"`
	Username       string `gorm:"type:text;not null"`
	Password       string `gorm:"type:text;not null"`
	VncPassword    string `gorm:"type:text;not null"`
	ServiceType    string `gorm:"type:text;not null"`
	ClientType     string `gorm:"type:text;not null"`
	Port           int64  `gorm:"not null"`
	Geometry       string `gorm:"type:text;not null"`
	IsAppsSession  bool   `gorm:"not null"`
}

func (sessionModel) TableName() string { return "session" }

func newSessionModel(s entities.Session) sessionModel {
	return sessionModel{
		ID:             s.ID,
		Name:           s.Name,
		FilesystemID:   s.FilesystemID,
		FilesystemName: s.FilesystemName,
		Active:         s.Active,
		Username:       s.Username,
		Password:       s.Password,
		VncPassword:    s.VncPassword,
		ServiceType:    s.ServiceType.String(),
		ClientType:     s.ClientType,
		Port:           s.Port,
		Geometry:       s.Geometry,
		IsAppsSession:  s.IsAppsSession,
	}
}

func (m sessionModel) entity() (entities.Session, error) {
	serviceType, err := entities.ServiceTypeFromString(m.ServiceType)
	if err != nil {
		return entities.Session{}, err
	}
	return entities.Session{
		ID:             m.ID,
		Name:           m.Name,
		FilesystemID:   m.FilesystemID,
		FilesystemName: m.FilesystemName,
		Active:         m.Active,
		Username:       m.Username,
		Password:       m.Password,
		VncPassword:    m.VncPassword,
		ServiceType:    serviceType,
		ClientType:     m.ClientType,
		Port:           m.Port,
		Geometry:       m.Geometry,
		IsAppsSession:  m.IsAppsSession,
	}, nil
}
