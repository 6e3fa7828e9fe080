package startup

import (
	"github.com/ula-apps/appstartup/core/entities"
)

// Event is something a caller asks the apps startup FSM to do. The set is closed: only the
// types declared in this file implement it.
type Event interface {
	Name() string
	isEvent()
}

type Select struct {
	App entities.App
}

type CheckFilesystemCredentials struct {
	Filesystem entities.Filesystem
}

type SubmitFilesystemCredentials struct {
	Filesystem  entities.Filesystem
	Username    string
	Password    string
	VncPassword string
}

type CheckServiceType struct {
	Session entities.Session
}

type SubmitServiceType struct {
	Session     entities.Session
	ServiceType entities.ServiceType
}

type InstallScript struct {
	App        entities.App
	Filesystem entities.Filesystem
}

type SyncRecords struct {
	App        entities.App
	Session    entities.Session
	Filesystem entities.Filesystem
}

// Reset is accepted in every state and returns the FSM to WaitingForSelection.
type Reset struct{}

func (Select) Name() string                      { return "select" }
func (CheckFilesystemCredentials) Name() string  { return "check_filesystem_credentials" }
func (SubmitFilesystemCredentials) Name() string { return "submit_filesystem_credentials" }
func (CheckServiceType) Name() string            { return "check_service_type" }
func (SubmitServiceType) Name() string           { return "submit_service_type" }
func (InstallScript) Name() string               { return "install_script" }
func (SyncRecords) Name() string                 { return "sync_records" }
func (Reset) Name() string                       { return "reset" }

func (Select) isEvent()                      {}
func (CheckFilesystemCredentials) isEvent()  {}
func (SubmitFilesystemCredentials) isEvent() {}
func (CheckServiceType) isEvent()            {}
func (SubmitServiceType) isEvent()           {}
func (InstallScript) isEvent()               {}
func (SyncRecords) isEvent()                 {}
func (Reset) isEvent()                       {}
