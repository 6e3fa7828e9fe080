package entities

import "fmt"

const (
	DefaultSessionPort     = 2022
	DefaultSessionGeometry = "1024x768"
	ClientTypeUnknown      = "unknown"
)

// Session is one launchable instance of a workload. The filesystem linkage and credential
// copies are only filled in once an app session is synced with its filesystem.
type Session struct {
	ID             int64       `json:"id"`
	Name           string      `json:"name"`
	FilesystemID   int64       `json:"filesystem_id"`
	FilesystemName string      `json:"filesystem_name"`
	Active         bool        `json:"active"`
	Username       string      `json:"username"`
	Password       string      `json:"password"`
	VncPassword    string      `json:"vnc_password"`
	ServiceType    ServiceType `json:"service_type"`
	ClientType     string      `json:"client_type"`
	Port           int64       `json:"port"`
	Geometry       string      `json:"geometry"`
	IsAppsSession  bool        `json:"is_apps_session"`
}

func (s Session) String() string {
	return fmt.Sprintf("Session(id=%d, name=%s, filesystemId=%d, filesystemName=%s, serviceType=%s, isAppsSession=%t)",
		s.ID, s.Name, s.FilesystemID, s.FilesystemName, s.ServiceType, s.IsAppsSession)
}

// NewAppSession builds the record inserted the first time appName is selected.
func NewAppSession(appName string) Session {
	return Session{
		Name:          appName,
		ServiceType:   ServiceTypeUnselected,
		ClientType:    ClientTypeUnknown,
		Port:          DefaultSessionPort,
		Geometry:      DefaultSessionGeometry,
		IsAppsSession: true,
	}
}

// LinkFilesystem copies the identity and credentials of fs onto the session.
func (s Session) LinkFilesystem(fs Filesystem) Session {
	s.FilesystemID = fs.ID
	s.FilesystemName = fs.Name
	s.Username = fs.DefaultUsername
	s.Password = fs.DefaultPassword
	s.VncPassword = fs.DefaultVncPassword
	return s
}
