package startup

import (
	"context"
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ula-apps/appstartup/core/entities"
	"go.uber.org/mock/gomock"
)

func TestInitialStateIsWaitingForSelection(t *testing.T) {
	fsm := newTestFSM(t)
	fsm.observe()

	assert.Equal(t, []State{WaitingForSelection{}}, fsm.observer.recorded())
	assert.Equal(t, WaitingForSelection{}, fsm.CurrentState())
}

func TestExitsEarlyWhenAnIncorrectTransitionIsSubmitted(t *testing.T) {
	fsm := newTestFSM(t)
	state := WaitingForSelection{}
	fsm.SetState(state)
	fsm.observe()

	event := CheckFilesystemCredentials{Filesystem: appsFilesystem}
	err := fsm.SubmitEvent(context.Background(), event)
	assert.Nil(t, err)

	assert.Equal(t, []State{
		WaitingForSelection{},
		InvalidTransition{Event: event, State: state},
	}, fsm.observer.recorded())
}

func TestStateCanBeReset(t *testing.T) {
	fsm := newTestFSM(t)
	fsm.observe()

	for _, state := range possibleStates() {
		fsm.SetState(state)
		err := fsm.SubmitEvent(context.Background(), Reset{})
		assert.Nil(t, err)
		assert.Equal(t, WaitingForSelection{}, fsm.CurrentState())
	}

	// initial state, WaitingForSelection being set directly, then one reset per state
	assert.Equal(t, len(possibleStates())+2, fsm.observer.count(WaitingForSelection{}))
}

func TestInsertsAppsFilesystemIfNotYetPresent(t *testing.T) {
	fsm := newTestFSM(t)
	fsm.SetState(WaitingForSelection{})
	fsm.observe()

	expectedFilesystem := appsFilesystem
	expectedFilesystem.VersionCodeUsed = entities.DefaultVersionCodeUsed

	fsm.env.EXPECT().ArchType().Return("")
	gomock.InOrder(
		fsm.filesystems.EXPECT().FindAppsFilesystemByType(gomock.Any(), app.FilesystemRequired).Return([]entities.Filesystem{}, nil),
		fsm.filesystems.EXPECT().InsertFilesystem(gomock.Any(), expectedFilesystem).Return(int64(1), nil),
		fsm.filesystems.EXPECT().FindAppsFilesystemByType(gomock.Any(), app.FilesystemRequired).Return([]entities.Filesystem{appsFilesystem}, nil),
	)
	fsm.sessions.EXPECT().FindAppsSession(gomock.Any(), app.Name).Return([]entities.Session{appSession}, nil)

	err := fsm.SubmitEvent(context.Background(), Select{App: app})
	assert.Nil(t, err)

	assert.Equal(t, []State{
		WaitingForSelection{},
		FetchingRecords{},
		RecordsFetched{Filesystem: appsFilesystem, Session: appSession},
	}, fsm.observer.recorded())
}

func TestInsertsAppSessionIfNotYetPresent(t *testing.T) {
	fsm := newTestFSM(t)
	fsm.SetState(WaitingForSelection{})
	fsm.observe()

	fsm.filesystems.EXPECT().FindAppsFilesystemByType(gomock.Any(), app.FilesystemRequired).Return([]entities.Filesystem{appsFilesystem}, nil)
	gomock.InOrder(
		fsm.sessions.EXPECT().FindAppsSession(gomock.Any(), app.Name).Return(nil, nil),
		fsm.sessions.EXPECT().InsertSession(gomock.Any(), entities.NewAppSession(app.Name)).Return(int64(1), nil),
		fsm.sessions.EXPECT().FindAppsSession(gomock.Any(), app.Name).Return([]entities.Session{appSession}, nil),
	)

	err := fsm.SubmitEvent(context.Background(), Select{App: app})
	assert.Nil(t, err)

	assert.Equal(t, []State{
		WaitingForSelection{},
		FetchingRecords{},
		RecordsFetched{Filesystem: appsFilesystem, Session: appSession},
	}, fsm.observer.recorded())
}

func TestFetchesRecordsWhenAppSelected(t *testing.T) {
	fsm := newTestFSM(t)
	fsm.SetState(WaitingForSelection{})
	fsm.observe()

	fsm.filesystems.EXPECT().FindAppsFilesystemByType(gomock.Any(), app.FilesystemRequired).Return([]entities.Filesystem{appsFilesystem}, nil).Times(1)
	fsm.sessions.EXPECT().FindAppsSession(gomock.Any(), app.Name).Return([]entities.Session{appSession}, nil).Times(1)

	err := fsm.SubmitEvent(context.Background(), Select{App: app})
	assert.Nil(t, err)

	assert.Equal(t, []State{
		WaitingForSelection{},
		FetchingRecords{},
		RecordsFetched{Filesystem: appsFilesystem, Session: appSession},
	}, fsm.observer.recorded())
}

func TestPostsFailureStateIfInsertedFilesystemIsMissing(t *testing.T) {
	fsm := newTestFSM(t)
	fsm.SetState(WaitingForSelection{})
	fsm.observe()

	fsm.env.EXPECT().ArchType().Return("")
	gomock.InOrder(
		fsm.filesystems.EXPECT().FindAppsFilesystemByType(gomock.Any(), app.FilesystemRequired).Return(nil, nil),
		fsm.filesystems.EXPECT().InsertFilesystem(gomock.Any(), gomock.Any()).Return(int64(1), nil).Times(1),
		// simulate failure to retrieve the previous insertion
		fsm.filesystems.EXPECT().FindAppsFilesystemByType(gomock.Any(), app.FilesystemRequired).Return(nil, nil),
	)

	err := fsm.SubmitEvent(context.Background(), Select{App: app})
	assert.Nil(t, err)

	assert.Equal(t, []State{
		WaitingForSelection{},
		FetchingRecords{},
		RecordsFetchFailed{},
	}, fsm.observer.recorded())
}

func TestPostsFailureStateIfInsertedSessionIsMissing(t *testing.T) {
	fsm := newTestFSM(t)
	fsm.SetState(WaitingForSelection{})
	fsm.observe()

	fsm.filesystems.EXPECT().FindAppsFilesystemByType(gomock.Any(), app.FilesystemRequired).Return([]entities.Filesystem{appsFilesystem}, nil)
	fsm.sessions.EXPECT().FindAppsSession(gomock.Any(), app.Name).Return(nil, nil).Times(2)
	fsm.sessions.EXPECT().InsertSession(gomock.Any(), gomock.Any()).Return(int64(1), nil)

	err := fsm.SubmitEvent(context.Background(), Select{App: app})
	assert.Nil(t, err)
	assert.Equal(t, RecordsFetchFailed{}, fsm.CurrentState())
}

func TestPostsFailureStateIfStoreErrors(t *testing.T) {
	fsm := newTestFSM(t)
	fsm.SetState(WaitingForSelection{})
	fsm.observe()

	fsm.filesystems.EXPECT().FindAppsFilesystemByType(gomock.Any(), app.FilesystemRequired).Return(nil, errors.New("database is locked"))

	err := fsm.SubmitEvent(context.Background(), Select{App: app})
	assert.Nil(t, err)

	assert.Equal(t, []State{
		WaitingForSelection{},
		FetchingRecords{},
		RecordsFetchFailed{},
	}, fsm.observer.recorded())
}

func TestRequiresCredentialsIfAnyAreMissing(t *testing.T) {
	withoutUsername := appsFilesystemWithCredentials
	withoutUsername.DefaultUsername = ""
	withoutPassword := appsFilesystemWithCredentials
	withoutPassword.DefaultPassword = ""
	withoutVncPassword := appsFilesystemWithCredentials
	withoutVncPassword.DefaultVncPassword = ""

	testCases := []struct {
		name       string
		filesystem entities.Filesystem
	}{
		{"username missing", withoutUsername},
		{"password missing", withoutPassword},
		{"vnc password missing", withoutVncPassword},
		{"all missing", appsFilesystem},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fsm := newTestFSM(t)
			fsm.SetState(RecordsFetched{Filesystem: appsFilesystem, Session: appSession})
			fsm.observe()

			err := fsm.SubmitEvent(context.Background(), CheckFilesystemCredentials{Filesystem: tc.filesystem})
			assert.Nil(t, err)
			assert.Equal(t, FilesystemRequiresCredentials{Filesystem: tc.filesystem}, fsm.CurrentState())
		})
	}
}

func TestStateIsFilesystemHasCredentialsIfTheyAreSet(t *testing.T) {
	fsm := newTestFSM(t)
	fsm.SetState(RecordsFetched{Filesystem: appsFilesystem, Session: appSession})
	fsm.observe()

	err := fsm.SubmitEvent(context.Background(), CheckFilesystemCredentials{Filesystem: appsFilesystemWithCredentials})
	assert.Nil(t, err)
	assert.Equal(t, FilesystemHasCredentials{}, fsm.CurrentState())
}

func TestSetsCredentialsOnSubmission(t *testing.T) {
	fsm := newTestFSM(t)
	fsm.SetState(FilesystemRequiresCredentials{Filesystem: appsFilesystem})
	fsm.observe()

	fsm.filesystems.EXPECT().UpdateFilesystem(gomock.Any(), appsFilesystemWithCredentials).Return(nil).Times(1)

	err := fsm.SubmitEvent(context.Background(), SubmitFilesystemCredentials{
		Filesystem:  appsFilesystem,
		Username:    defaultUsername,
		Password:    defaultPassword,
		VncPassword: defaultPassword,
	})
	assert.Nil(t, err)

	assert.Equal(t, []State{
		FilesystemRequiresCredentials{Filesystem: appsFilesystem},
		FilesystemHasCredentials{},
	}, fsm.observer.recorded())
}

func TestSubmittedCredentialsOverwritePreviousValues(t *testing.T) {
	fsm := newTestFSM(t)
	fsm.SetState(FilesystemRequiresCredentials{Filesystem: appsFilesystemWithCredentials})

	expected := appsFilesystemWithCredentials
	expected.DefaultUsername = "other"
	expected.DefaultPassword = "secret"
	expected.DefaultVncPassword = "vncsecret"
	fsm.filesystems.EXPECT().UpdateFilesystem(gomock.Any(), expected).Return(nil)

	err := fsm.SubmitEvent(context.Background(), SubmitFilesystemCredentials{
		Filesystem:  appsFilesystemWithCredentials,
		Username:    "other",
		Password:    "secret",
		VncPassword: "vncsecret",
	})
	assert.Nil(t, err)
	assert.Equal(t, FilesystemHasCredentials{}, fsm.CurrentState())
}

func TestCredentialPersistenceFailureKeepsState(t *testing.T) {
	fsm := newTestFSM(t)
	fsm.SetState(FilesystemRequiresCredentials{Filesystem: appsFilesystem})

	fsm.filesystems.EXPECT().UpdateFilesystem(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	err := fsm.SubmitEvent(context.Background(), SubmitFilesystemCredentials{
		Filesystem:  appsFilesystem,
		Username:    defaultUsername,
		Password:    defaultPassword,
		VncPassword: defaultPassword,
	})
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, FilesystemRequiresCredentials{Filesystem: appsFilesystem}, fsm.CurrentState())

	// the caller can always recover through a reset
	assert.Nil(t, fsm.SubmitEvent(context.Background(), Reset{}))
	assert.Equal(t, WaitingForSelection{}, fsm.CurrentState())
}

func TestStateIsServiceTypeSetIfAlreadySet(t *testing.T) {
	fsm := newTestFSM(t)
	fsm.SetState(FilesystemHasCredentials{})
	fsm.observe()

	session := appSession
	session.ServiceType = entities.ServiceTypeSsh

	err := fsm.SubmitEvent(context.Background(), CheckServiceType{Session: session})
	assert.Nil(t, err)
	assert.Equal(t, ServiceTypeSet{}, fsm.CurrentState())
}

func TestStateIsServiceTypeRequiredIfNotSet(t *testing.T) {
	fsm := newTestFSM(t)
	fsm.SetState(FilesystemHasCredentials{})
	fsm.observe()

	session := appSession
	session.ServiceType = entities.ServiceTypeUnselected

	err := fsm.SubmitEvent(context.Background(), CheckServiceType{Session: session})
	assert.Nil(t, err)
	assert.Equal(t, ServiceTypeRequired{}, fsm.CurrentState())
}

func TestSetsServiceTypeOnSubmission(t *testing.T) {
	fsm := newTestFSM(t)
	fsm.SetState(ServiceTypeRequired{})
	fsm.observe()

	expectedSession := appSession
	expectedSession.ServiceType = entities.ServiceTypeSsh
	fsm.sessions.EXPECT().UpdateSession(gomock.Any(), expectedSession).Return(nil).Times(1)

	err := fsm.SubmitEvent(context.Background(), SubmitServiceType{Session: appSession, ServiceType: entities.ServiceTypeSsh})
	assert.Nil(t, err)

	assert.Equal(t, []State{
		ServiceTypeRequired{},
		ServiceTypeSet{},
	}, fsm.observer.recorded())
}

func TestStateIsCopySucceeded(t *testing.T) {
	fsm := newTestFSM(t)
	fsm.SetState(ServiceTypeSet{})
	fsm.observe()

	fsm.installer.EXPECT().MoveAppScriptToRequiredLocation(gomock.Any(), app.Name, appsFilesystem).Return(nil)

	err := fsm.SubmitEvent(context.Background(), InstallScript{App: app, Filesystem: appsFilesystem})
	assert.Nil(t, err)

	assert.Equal(t, []State{
		ServiceTypeSet{},
		CopyingScript{},
		ScriptCopySucceeded{},
	}, fsm.observer.recorded())
}

func TestStateIsCopyFailed(t *testing.T) {
	fsm := newTestFSM(t)
	fsm.SetState(ServiceTypeSet{})
	fsm.observe()

	fsm.installer.EXPECT().MoveAppScriptToRequiredLocation(gomock.Any(), app.Name, appsFilesystem).Return(&fs.PathError{Op: "open", Path: "app.sh", Err: fs.ErrNotExist})

	err := fsm.SubmitEvent(context.Background(), InstallScript{App: app, Filesystem: appsFilesystem})
	assert.Nil(t, err)

	assert.Equal(t, []State{
		ServiceTypeSet{},
		CopyingScript{},
		ScriptCopyFailed{},
	}, fsm.observer.recorded())
}

func TestSyncsSessionRecordCorrectly(t *testing.T) {
	fsm := newTestFSM(t)
	fsm.SetState(ScriptCopySucceeded{})
	fsm.observe()

	filesystem := appsFilesystemWithCredentials
	filesystem.ID = 4

	updatedAppSession := appSession
	updatedAppSession.FilesystemID = filesystem.ID
	updatedAppSession.FilesystemName = filesystem.Name
	updatedAppSession.Username = filesystem.DefaultUsername
	updatedAppSession.Password = filesystem.DefaultPassword
	updatedAppSession.VncPassword = filesystem.DefaultVncPassword

	fsm.sessions.EXPECT().UpdateSession(gomock.Any(), updatedAppSession).Return(nil).Times(1)

	err := fsm.SubmitEvent(context.Background(), SyncRecords{App: app, Session: appSession, Filesystem: filesystem})
	assert.Nil(t, err)

	assert.Equal(t, []State{
		ScriptCopySucceeded{},
		SyncingRecords{},
		RecordsSynced{App: app, Session: updatedAppSession, Filesystem: filesystem},
	}, fsm.observer.recorded())
}

func TestSecondSubmissionWaitsForTheFirst(t *testing.T) {
	fsm := newTestFSM(t)
	fsm.SetState(ServiceTypeSet{})
	fsm.observe()

	started := make(chan struct{})
	release := make(chan struct{})
	fsm.installer.EXPECT().MoveAppScriptToRequiredLocation(gomock.Any(), app.Name, appsFilesystem).
		DoAndReturn(func(ctx context.Context, appName string, filesystem entities.Filesystem) error {
			close(started)
			<-release
			return nil
		})
	fsm.sessions.EXPECT().UpdateSession(gomock.Any(), gomock.Any()).Return(nil)

	installDone := make(chan error, 1)
	go func() {
		installDone <- fsm.SubmitEvent(context.Background(), InstallScript{App: app, Filesystem: appsFilesystem})
	}()
	<-started

	// submitted while the install is still running; it is only valid once the copy succeeded
	syncDone := make(chan error, 1)
	go func() {
		syncDone <- fsm.SubmitEvent(context.Background(), SyncRecords{App: app, Session: appSession, Filesystem: appsFilesystem})
	}()

	assert.Never(t, func() bool { return len(syncDone) > 0 }, 50*time.Millisecond, 5*time.Millisecond)
	close(release)

	require.Nil(t, <-installDone)
	require.Nil(t, <-syncDone)

	assert.Equal(t, []State{
		ServiceTypeSet{},
		CopyingScript{},
		ScriptCopySucceeded{},
		SyncingRecords{},
		RecordsSynced{App: app, Session: appSession.LinkFilesystem(appsFilesystem), Filesystem: appsFilesystem},
	}, fsm.observer.recorded())
}

func TestResetDiscardsInflightSubmission(t *testing.T) {
	fsm := newTestFSM(t)
	fsm.SetState(ServiceTypeSet{})
	fsm.observe()

	started := make(chan struct{})
	fsm.installer.EXPECT().MoveAppScriptToRequiredLocation(gomock.Any(), app.Name, appsFilesystem).
		DoAndReturn(func(ctx context.Context, appName string, filesystem entities.Filesystem) error {
			close(started)
			<-ctx.Done()
			return ctx.Err()
		})

	installDone := make(chan error, 1)
	go func() {
		installDone <- fsm.SubmitEvent(context.Background(), InstallScript{App: app, Filesystem: appsFilesystem})
	}()
	<-started

	err := fsm.SubmitEvent(context.Background(), Reset{})
	assert.Nil(t, err)

	err = <-installDone
	assert.ErrorIs(t, err, context.Canceled)

	// ScriptCopyFailed from the discarded install is never published
	assert.Equal(t, []State{
		ServiceTypeSet{},
		CopyingScript{},
		WaitingForSelection{},
	}, fsm.observer.recorded())
}

func TestWaitingSubmissionHonoursItsContext(t *testing.T) {
	fsm := newTestFSM(t)
	fsm.SetState(ServiceTypeSet{})

	started := make(chan struct{})
	release := make(chan struct{})
	fsm.installer.EXPECT().MoveAppScriptToRequiredLocation(gomock.Any(), app.Name, appsFilesystem).
		DoAndReturn(func(ctx context.Context, appName string, filesystem entities.Filesystem) error {
			close(started)
			<-release
			return nil
		})

	installDone := make(chan error, 1)
	go func() {
		installDone <- fsm.SubmitEvent(context.Background(), InstallScript{App: app, Filesystem: appsFilesystem})
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := fsm.SubmitEvent(ctx, SyncRecords{App: app, Session: appSession, Filesystem: appsFilesystem})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	assert.Nil(t, <-installDone)
	assert.Equal(t, ScriptCopySucceeded{}, fsm.CurrentState())
}
