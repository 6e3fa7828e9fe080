package startup

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/ula-apps/appstartup/core/entities"
)

var (
	ErrRecordsFetchFailed    = errors.New("could not fetch app records")
	ErrScriptCopyFailed      = errors.New("could not copy app script to filesystem")
	ErrInvalidTransition     = errors.New("startup event submitted out of order")
	ErrServiceTypeRequired   = errors.New("a service type must be selected")
	ErrCredentialsIncomplete = errors.New("username, password and vnc password are all required")
)

type Credentials struct {
	Username    string
	Password    string
	VncPassword string
}

func (c Credentials) complete() bool {
	return c.Username != "" && c.Password != "" && c.VncPassword != ""
}

// Prompter asks the user for whatever the startup sequence cannot decide on its own.
type Prompter interface {
	Credentials(ctx context.Context, filesystem entities.Filesystem) (Credentials, error)
	ServiceType(ctx context.Context, app entities.App) (entities.ServiceType, error)
}

// Runner owns the startup sequence of an app: it reacts to every state the FSM publishes by
// submitting the next event, until the app's records are synced.
type Runner struct {
	fsm      *FSM
	prompter Prompter
	logger   *zerolog.Logger
}

func NewRunner(fsm *FSM, prompter Prompter, logger *zerolog.Logger) *Runner {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Runner{
		fsm:      fsm,
		prompter: prompter,
		logger:   logger,
	}
}

// Start drives the FSM from app selection to RecordsSynced. On failure the FSM is reset so
// the next Start begins from a clean selection.
func (r *Runner) Start(ctx context.Context, app entities.App) (RecordsSynced, error) {
	if _, ok := r.fsm.CurrentState().(WaitingForSelection); !ok {
		err := r.fsm.SubmitEvent(ctx, Reset{})
		if err != nil {
			return RecordsSynced{}, err
		}
	}

	synced, err := r.run(ctx, app)
	if err != nil {
		// reset even if ctx is already done
		resetErr := r.fsm.SubmitEvent(context.WithoutCancel(ctx), Reset{})
		if resetErr != nil {
			r.logger.Error().Err(resetErr).Msg("error resetting apps startup")
		}
		return RecordsSynced{}, err
	}

	r.logger.Info().
		Str("app", synced.App.Name).
		Int64("session_id", synced.Session.ID).
		Int64("filesystem_id", synced.Filesystem.ID).
		Stringer("service_type", synced.Session.ServiceType).
		Msg("app ready to start")
	return synced, nil
}

func (r *Runner) run(ctx context.Context, app entities.App) (RecordsSynced, error) {
	var filesystem entities.Filesystem
	var session entities.Session

	var event Event = Select{App: app}
	for {
		err := r.fsm.SubmitEvent(ctx, event)
		if err != nil {
			return RecordsSynced{}, err
		}

		switch state := r.fsm.CurrentState().(type) {
		case RecordsFetched:
			filesystem, session = state.Filesystem, state.Session
			event = CheckFilesystemCredentials{Filesystem: filesystem}

		case FilesystemRequiresCredentials:
			credentials, err := r.prompter.Credentials(ctx, state.Filesystem)
			if err != nil {
				return RecordsSynced{}, fmt.Errorf("error asking for filesystem credentials: %w", err)
			}
			if !credentials.complete() {
				return RecordsSynced{}, ErrCredentialsIncomplete
			}
			filesystem.DefaultUsername = credentials.Username
			filesystem.DefaultPassword = credentials.Password
			filesystem.DefaultVncPassword = credentials.VncPassword
			event = SubmitFilesystemCredentials{
				Filesystem:  state.Filesystem,
				Username:    credentials.Username,
				Password:    credentials.Password,
				VncPassword: credentials.VncPassword,
			}

		case FilesystemHasCredentials:
			event = CheckServiceType{Session: session}

		case ServiceTypeRequired:
			serviceType, err := r.chooseServiceType(ctx, app)
			if err != nil {
				return RecordsSynced{}, err
			}
			session.ServiceType = serviceType
			event = SubmitServiceType{Session: session, ServiceType: serviceType}

		case ServiceTypeSet:
			event = InstallScript{App: app, Filesystem: filesystem}

		case ScriptCopySucceeded:
			event = SyncRecords{App: app, Session: session, Filesystem: filesystem}

		case RecordsSynced:
			return state, nil

		case RecordsFetchFailed:
			return RecordsSynced{}, ErrRecordsFetchFailed

		case ScriptCopyFailed:
			return RecordsSynced{}, ErrScriptCopyFailed

		case InvalidTransition:
			return RecordsSynced{}, fmt.Errorf("%w: %s", ErrInvalidTransition, state)

		default:
			return RecordsSynced{}, fmt.Errorf("apps startup stopped in unexpected state %s", state.Name())
		}
	}
}

// chooseServiceType only asks when the app supports both a terminal and a graphical session.
func (r *Runner) chooseServiceType(ctx context.Context, app entities.App) (entities.ServiceType, error) {
	switch {
	case app.SupportsCLI && !app.SupportsGUI:
		return entities.ServiceTypeSsh, nil
	case app.SupportsGUI && !app.SupportsCLI:
		return entities.ServiceTypeVnc, nil
	}

	serviceType, err := r.prompter.ServiceType(ctx, app)
	if err != nil {
		return entities.ServiceTypeUnselected, fmt.Errorf("error asking for service type: %w", err)
	}
	if !serviceType.IsSet() {
		return entities.ServiceTypeUnselected, ErrServiceTypeRequired
	}
	return serviceType, nil
}
