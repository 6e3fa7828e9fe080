package startup

import (
	"fmt"

	"github.com/ula-apps/appstartup/core/entities"
)

// State is one of the states the apps startup FSM can publish. The set is closed: only the
// types declared in this file implement it.
type State interface {
	Name() string
	isState()
}

type WaitingForSelection struct{}

type FetchingRecords struct{}

type RecordsFetched struct {
	Filesystem entities.Filesystem
	Session    entities.Session
}

type RecordsFetchFailed struct{}

type FilesystemRequiresCredentials struct {
	Filesystem entities.Filesystem
}

type FilesystemHasCredentials struct{}

type ServiceTypeRequired struct{}

type ServiceTypeSet struct{}

type CopyingScript struct{}

type ScriptCopySucceeded struct{}

type ScriptCopyFailed struct{}

type SyncingRecords struct{}

type RecordsSynced struct {
	App        entities.App
	Session    entities.Session
	Filesystem entities.Filesystem
}

// InvalidTransition is published when Event was submitted while the FSM was in State. Only a
// Reset is accepted from here.
type InvalidTransition struct {
	Event Event
	State State
}

func (WaitingForSelection) Name() string           { return "waiting_for_selection" }
func (FetchingRecords) Name() string               { return "fetching_records" }
func (RecordsFetched) Name() string                { return "records_fetched" }
func (RecordsFetchFailed) Name() string            { return "records_fetch_failed" }
func (FilesystemRequiresCredentials) Name() string { return "filesystem_requires_credentials" }
func (FilesystemHasCredentials) Name() string      { return "filesystem_has_credentials" }
func (ServiceTypeRequired) Name() string           { return "service_type_required" }
func (ServiceTypeSet) Name() string                { return "service_type_set" }
func (CopyingScript) Name() string                 { return "copying_script" }
func (ScriptCopySucceeded) Name() string           { return "script_copy_succeeded" }
func (ScriptCopyFailed) Name() string              { return "script_copy_failed" }
func (SyncingRecords) Name() string                { return "syncing_records" }
func (RecordsSynced) Name() string                 { return "records_synced" }
func (InvalidTransition) Name() string             { return "invalid_transition" }

func (s InvalidTransition) String() string {
	return fmt.Sprintf("%s(event=%s, state=%s)", s.Name(), nameOf(s.Event), nameOf(s.State))
}

func (WaitingForSelection) isState()           {}
func (FetchingRecords) isState()               {}
func (RecordsFetched) isState()                {}
func (RecordsFetchFailed) isState()            {}
func (FilesystemRequiresCredentials) isState() {}
func (FilesystemHasCredentials) isState()      {}
func (ServiceTypeRequired) isState()           {}
func (ServiceTypeSet) isState()                {}
func (CopyingScript) isState()                 {}
func (ScriptCopySucceeded) isState()           {}
func (ScriptCopyFailed) isState()              {}
func (SyncingRecords) isState()                {}
func (RecordsSynced) isState()                 {}
func (InvalidTransition) isState()             {}

type named interface {
	Name() string
}

func nameOf(n named) string {
	if n == nil {
		return "<nil>"
	}
	return n.Name()
}
