package startup

import (
	"sync"
	"testing"

	"github.com/ula-apps/appstartup/core/entities"
	"github.com/ula-apps/appstartup/internal/startup/mocks"
	"go.uber.org/mock/gomock"
)

const (
	appsFilesystemName = "apps"
	appsFilesystemType = "type"
	appName            = "app"
	defaultUsername    = "user"
	defaultPassword    = "password"
)

var (
	app = entities.App{Name: appName, FilesystemRequired: appsFilesystemType}

	appsFilesystem = entities.Filesystem{
		ID:               0,
		Name:             appsFilesystemName,
		DistributionType: appsFilesystemType,
		IsAppsFilesystem: true,
	}
	appsFilesystemWithCredentials = entities.Filesystem{
		ID:                 0,
		Name:               appsFilesystemName,
		DistributionType:   appsFilesystemType,
		IsAppsFilesystem:   true,
		DefaultUsername:    defaultUsername,
		DefaultPassword:    defaultPassword,
		DefaultVncPassword: defaultPassword,
	}

	appSession = entities.Session{ID: 0, Name: appName, FilesystemID: 0, IsAppsSession: true}
)

func possibleEvents() []Event {
	return []Event{
		Select{App: app},
		CheckFilesystemCredentials{Filesystem: appsFilesystem},
		SubmitFilesystemCredentials{Filesystem: appsFilesystem},
		CheckServiceType{Session: appSession},
		SubmitServiceType{Session: appSession, ServiceType: entities.ServiceTypeUnselected},
		InstallScript{App: app, Filesystem: appsFilesystem},
		SyncRecords{App: app, Session: appSession, Filesystem: appsFilesystem},
		Reset{},
	}
}

func possibleStates() []State {
	return []State{
		InvalidTransition{Event: Select{App: app}, State: FetchingRecords{}},
		WaitingForSelection{},
		FetchingRecords{},
		RecordsFetched{Filesystem: appsFilesystem, Session: appSession},
		RecordsFetchFailed{},
		FilesystemHasCredentials{},
		FilesystemRequiresCredentials{Filesystem: appsFilesystem},
		ServiceTypeSet{},
		ServiceTypeRequired{},
		CopyingScript{},
		ScriptCopySucceeded{},
		ScriptCopyFailed{},
		SyncingRecords{},
		RecordsSynced{App: app, Session: appSession, Filesystem: appsFilesystem},
	}
}

// stateRecorder plays the part of a UI observing the FSM.
type stateRecorder struct {
	mu     sync.Mutex
	states []State
}

func (r *stateRecorder) ConsumeEvent(s State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
	return nil
}

func (r *stateRecorder) recorded() []State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]State(nil), r.states...)
}

func (r *stateRecorder) count(s State) int {
	n := 0
	for _, recorded := range r.recorded() {
		if recorded == s {
			n++
		}
	}
	return n
}

type testFSM struct {
	*FSM
	filesystems *mocks.MockFilesystemStore
	sessions    *mocks.MockSessionStore
	installer   *mocks.MockScriptInstaller
	env         *mocks.MockEnvironmentInfo
	observer    *stateRecorder
}

// newTestFSM builds an FSM over fresh mocks. Any collaborator call not set up by the test
// fails it.
func newTestFSM(t *testing.T) *testFSM {
	ctrl := gomock.NewController(t)

	filesystems := mocks.NewMockFilesystemStore(ctrl)
	sessions := mocks.NewMockSessionStore(ctrl)
	installer := mocks.NewMockScriptInstaller(ctrl)
	env := mocks.NewMockEnvironmentInfo(ctrl)

	return &testFSM{
		FSM:         NewFSM(filesystems, sessions, installer, env),
		filesystems: filesystems,
		sessions:    sessions,
		installer:   installer,
		env:         env,
		observer:    &stateRecorder{},
	}
}

// observe subscribes the recorder, which immediately receives the current state.
func (f *testFSM) observe() {
	f.States().AddSubscriber(f.observer)
}
