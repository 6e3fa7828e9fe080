package startup

import (
	"github.com/rs/zerolog"
)

// StateLogger is a subscriber for startup states that logs them.
type StateLogger struct {
	logger *zerolog.Logger
}

func NewStateLogger(logger *zerolog.Logger) *StateLogger {
	return &StateLogger{
		logger: logger,
	}
}

func (s *StateLogger) Name() string {
	return "StateLogger"
}

func (s *StateLogger) ConsumeEvent(state State) error {
	switch st := state.(type) {
	case InvalidTransition:
		s.logger.Warn().Msgf("Rejected %s", st)
	case RecordsFetchFailed, ScriptCopyFailed:
		s.logger.Warn().Msgf("Apps startup moved to %s", state.Name())
	default:
		s.logger.Info().Msgf("Apps startup moved to %s", state.Name())
	}
	return nil
}
