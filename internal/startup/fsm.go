package startup

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/ula-apps/appstartup/core/entities"
	"github.com/ula-apps/appstartup/internal/pubsub"
	"github.com/wI2L/jsondiff"
	"golang.org/x/sync/semaphore"
)

var (
	// ErrRecordMissing is returned when a record could not be found right after inserting it.
	ErrRecordMissing = errors.New("record missing after insertion")
	// ErrPersistence wraps store failures while saving credentials, service types or synced sessions.
	ErrPersistence = errors.New("error persisting startup records")
)

type Option func(*FSM)

func WithLogger(logger *zerolog.Logger) Option {
	return func(f *FSM) {
		f.logger = logger
	}
}

// WithVersionCode sets the version code stamped onto newly created apps filesystems.
func WithVersionCode(versionCode string) Option {
	return func(f *FSM) {
		f.versionCode = versionCode
	}
}

// FSM walks a selected app through everything required before its session can be started.
// Submissions are serialised: SubmitEvent holds a single slot for the whole handler, so a
// second submission waits until the first one has published all of its states.
type FSM struct {
	filesystems FilesystemStore
	sessions    SessionStore
	installer   ScriptInstaller
	env         EnvironmentInfo

	versionCode string
	logger      *zerolog.Logger

	state *pubsub.Watch[State]
	slot  *semaphore.Weighted

	// runID correlates every submission belonging to one selected app. Only touched while
	// holding slot.
	runID string

	inflightMu     sync.Mutex
	inflightCancel context.CancelFunc
}

func NewFSM(filesystems FilesystemStore, sessions SessionStore, installer ScriptInstaller, env EnvironmentInfo, opts ...Option) *FSM {
	nop := zerolog.Nop()
	f := &FSM{
		filesystems: filesystems,
		sessions:    sessions,
		installer:   installer,
		env:         env,
		versionCode: entities.DefaultVersionCodeUsed,
		logger:      &nop,
		state:       pubsub.NewWatch[State](WaitingForSelection{}),
		slot:        semaphore.NewWeighted(1),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// States returns the observable state. Subscribers get the current state immediately.
func (f *FSM) States() *pubsub.Watch[State] {
	return f.state
}

func (f *FSM) CurrentState() State {
	return f.state.Current()
}

// SetState publishes state without validating it. It exists for the owner of the startup
// sequence, to resume from a known checkpoint, and for tests.
func (f *FSM) SetState(state State) {
	f.publish(context.Background(), f.logger, state)
}

// SubmitEvent validates event against the current state and runs its handler, returning once
// every state the handler produces has been published. Out of order events are published as
// InvalidTransition and are not errors. A Reset cancels whatever handler is in flight; the
// cancelled submission returns the context error and publishes nothing further.
func (f *FSM) SubmitEvent(ctx context.Context, event Event) error {
	if _, ok := event.(Reset); ok {
		f.cancelInflight()
	}

	err := f.slot.Acquire(ctx, 1)
	if err != nil {
		return fmt.Errorf("waiting to submit %s: %w", event.Name(), err)
	}
	defer f.slot.Release(1)

	handlerCtx, cancel := context.WithCancel(ctx)
	f.setInflight(cancel)
	defer f.clearInflight()

	logger := f.logger.With().
		Str("submission_id", uuid.NewString()).
		Str("event", event.Name()).
		Logger()

	current := f.state.Current()
	if !TransitionIsAcceptable(current, event) {
		logger.Warn().Str("state", current.Name()).Msg("rejected out of order event")
		f.publish(handlerCtx, &logger, InvalidTransition{Event: event, State: current})
		return nil
	}

	if _, ok := event.(Select); ok {
		f.runID = uuid.NewString()
	}
	if f.runID != "" {
		logger = logger.With().Str("run_id", f.runID).Logger()
	}
	logger.Debug().Str("state", current.Name()).Msg("accepted event")

	err = f.execute(handlerCtx, &logger, event)
	if err != nil {
		logger.Error().Err(err).Msg("error handling event")
		return err
	}
	if handlerCtx.Err() != nil {
		logger.Info().Msg("event handling was discarded")
		return fmt.Errorf("%s discarded: %w", event.Name(), handlerCtx.Err())
	}
	return nil
}

func (f *FSM) execute(ctx context.Context, logger *zerolog.Logger, event Event) error {
	switch e := event.(type) {
	case Select:
		return f.selectApp(ctx, logger, e)
	case CheckFilesystemCredentials:
		return f.checkFilesystemCredentials(ctx, logger, e)
	case SubmitFilesystemCredentials:
		return f.submitFilesystemCredentials(ctx, logger, e)
	case CheckServiceType:
		return f.checkServiceType(ctx, logger, e)
	case SubmitServiceType:
		return f.submitServiceType(ctx, logger, e)
	case InstallScript:
		return f.installScript(ctx, logger, e)
	case SyncRecords:
		return f.syncRecords(ctx, logger, e)
	case Reset:
		f.runID = ""
		f.publish(ctx, logger, WaitingForSelection{})
		return nil
	}
	return fmt.Errorf("unhandled event %T", event)
}

func (f *FSM) selectApp(ctx context.Context, logger *zerolog.Logger, e Select) error {
	f.publish(ctx, logger, FetchingRecords{})

	filesystem, err := f.getOrCreateAppsFilesystem(ctx, logger, e.App)
	if err != nil {
		logger.Error().Err(err).Str("app", e.App.Name).Msg("error fetching apps filesystem")
		f.publish(ctx, logger, RecordsFetchFailed{})
		return nil
	}

	session, err := f.getOrCreateAppSession(ctx, logger, e.App)
	if err != nil {
		logger.Error().Err(err).Str("app", e.App.Name).Msg("error fetching app session")
		f.publish(ctx, logger, RecordsFetchFailed{})
		return nil
	}

	f.publish(ctx, logger, RecordsFetched{Filesystem: filesystem, Session: session})
	return nil
}

// getOrCreateAppsFilesystem always re-queries after inserting so that a store which lost the
// insert is reported instead of handing out an unsaved record.
func (f *FSM) getOrCreateAppsFilesystem(ctx context.Context, logger *zerolog.Logger, app entities.App) (entities.Filesystem, error) {
	found, err := f.filesystems.FindAppsFilesystemByType(ctx, app.FilesystemRequired)
	if err != nil {
		return entities.Filesystem{}, fmt.Errorf("finding apps filesystem of type %s: %w", app.FilesystemRequired, err)
	}

	if len(found) == 0 {
		filesystem := entities.NewAppsFilesystem(app.FilesystemRequired, f.env.ArchType(), f.versionCode)
		id, err := f.filesystems.InsertFilesystem(ctx, filesystem)
		if err != nil {
			return entities.Filesystem{}, fmt.Errorf("inserting apps filesystem of type %s: %w", app.FilesystemRequired, err)
		}
		logger.Info().Int64("filesystem_id", id).Str("distribution_type", app.FilesystemRequired).Msg("inserted apps filesystem")

		found, err = f.filesystems.FindAppsFilesystemByType(ctx, app.FilesystemRequired)
		if err != nil {
			return entities.Filesystem{}, fmt.Errorf("finding apps filesystem of type %s: %w", app.FilesystemRequired, err)
		}
		if len(found) == 0 {
			return entities.Filesystem{}, fmt.Errorf("%w: apps filesystem of type %s", ErrRecordMissing, app.FilesystemRequired)
		}
	}

	return found[0], nil
}

func (f *FSM) getOrCreateAppSession(ctx context.Context, logger *zerolog.Logger, app entities.App) (entities.Session, error) {
	found, err := f.sessions.FindAppsSession(ctx, app.Name)
	if err != nil {
		return entities.Session{}, fmt.Errorf("finding session for app %s: %w", app.Name, err)
	}

	if len(found) == 0 {
		id, err := f.sessions.InsertSession(ctx, entities.NewAppSession(app.Name))
		if err != nil {
			return entities.Session{}, fmt.Errorf("inserting session for app %s: %w", app.Name, err)
		}
		logger.Info().Int64("session_id", id).Str("app", app.Name).Msg("inserted app session")

		found, err = f.sessions.FindAppsSession(ctx, app.Name)
		if err != nil {
			return entities.Session{}, fmt.Errorf("finding session for app %s: %w", app.Name, err)
		}
		if len(found) == 0 {
			return entities.Session{}, fmt.Errorf("%w: session for app %s", ErrRecordMissing, app.Name)
		}
	}

	return found[0], nil
}

func (f *FSM) checkFilesystemCredentials(ctx context.Context, logger *zerolog.Logger, e CheckFilesystemCredentials) error {
	if e.Filesystem.HasCredentials() {
		f.publish(ctx, logger, FilesystemHasCredentials{})
	} else {
		f.publish(ctx, logger, FilesystemRequiresCredentials{Filesystem: e.Filesystem})
	}
	return nil
}

func (f *FSM) submitFilesystemCredentials(ctx context.Context, logger *zerolog.Logger, e SubmitFilesystemCredentials) error {
	filesystem := e.Filesystem
	filesystem.DefaultUsername = e.Username
	filesystem.DefaultPassword = e.Password
	filesystem.DefaultVncPassword = e.VncPassword

	err := f.filesystems.UpdateFilesystem(ctx, filesystem)
	if err != nil {
		return fmt.Errorf("%w: updating credentials of filesystem %d: %w", ErrPersistence, filesystem.ID, err)
	}

	f.publish(ctx, logger, FilesystemHasCredentials{})
	return nil
}

func (f *FSM) checkServiceType(ctx context.Context, logger *zerolog.Logger, e CheckServiceType) error {
	if e.Session.ServiceType.IsSet() {
		f.publish(ctx, logger, ServiceTypeSet{})
	} else {
		f.publish(ctx, logger, ServiceTypeRequired{})
	}
	return nil
}

func (f *FSM) submitServiceType(ctx context.Context, logger *zerolog.Logger, e SubmitServiceType) error {
	session := e.Session
	session.ServiceType = e.ServiceType

	err := f.sessions.UpdateSession(ctx, session)
	if err != nil {
		return fmt.Errorf("%w: updating service type of session %d: %w", ErrPersistence, session.ID, err)
	}
	logger.Info().Int64("session_id", session.ID).Stringer("service_type", session.ServiceType).Msg("set session service type")

	f.publish(ctx, logger, ServiceTypeSet{})
	return nil
}

func (f *FSM) installScript(ctx context.Context, logger *zerolog.Logger, e InstallScript) error {
	f.publish(ctx, logger, CopyingScript{})

	err := f.installer.MoveAppScriptToRequiredLocation(ctx, e.App.Name, e.Filesystem)
	if err != nil {
		logger.Error().Err(err).Str("app", e.App.Name).Int64("filesystem_id", e.Filesystem.ID).Msg("error copying app script")
		f.publish(ctx, logger, ScriptCopyFailed{})
		return nil
	}

	f.publish(ctx, logger, ScriptCopySucceeded{})
	return nil
}

func (f *FSM) syncRecords(ctx context.Context, logger *zerolog.Logger, e SyncRecords) error {
	f.publish(ctx, logger, SyncingRecords{})

	updated := e.Session.LinkFilesystem(e.Filesystem)
	logSessionChanges(logger, e.Session, updated)

	err := f.sessions.UpdateSession(ctx, updated)
	if err != nil {
		return fmt.Errorf("%w: syncing session %d with filesystem %d: %w", ErrPersistence, updated.ID, e.Filesystem.ID, err)
	}

	f.publish(ctx, logger, RecordsSynced{App: e.App, Session: updated, Filesystem: e.Filesystem})
	return nil
}

// logSessionChanges logs which session fields a sync changed. Only paths are logged since the
// values include credentials.
func logSessionChanges(logger *zerolog.Logger, before, after entities.Session) {
	if logger.GetLevel() > zerolog.DebugLevel {
		return
	}
	patch, err := jsondiff.Compare(before, after)
	if err != nil {
		logger.Debug().Err(err).Msg("error diffing synced session")
		return
	}
	paths := make([]string, 0, len(patch))
	for _, op := range patch {
		paths = append(paths, op.Path)
	}
	logger.Debug().Int64("session_id", after.ID).Strs("changed", paths).Msg("syncing session with filesystem")
}

// publish drops the state if ctx has been cancelled, which is how a Reset discards the
// remaining output of an in-flight handler.
func (f *FSM) publish(ctx context.Context, logger *zerolog.Logger, state State) {
	if ctx.Err() != nil {
		logger.Debug().Str("state", state.Name()).Msg("dropping state of discarded submission")
		return
	}
	logger.Debug().Str("state", state.Name()).Msg("publishing state")
	err := f.state.PublishEvent(state)
	if err != nil {
		logger.Error().Err(err).Str("state", state.Name()).Msg("state subscriber returned an error")
	}
}

func (f *FSM) setInflight(cancel context.CancelFunc) {
	f.inflightMu.Lock()
	defer f.inflightMu.Unlock()
	f.inflightCancel = cancel
}

func (f *FSM) clearInflight() {
	f.inflightMu.Lock()
	defer f.inflightMu.Unlock()
	if f.inflightCancel != nil {
		f.inflightCancel()
		f.inflightCancel = nil
	}
}

func (f *FSM) cancelInflight() {
	f.inflightMu.Lock()
	defer f.inflightMu.Unlock()
	if f.inflightCancel != nil {
		f.inflightCancel()
	}
}
