package startup

// TransitionIsAcceptable reports whether event may be processed while the FSM is in state.
// Reset is accepted everywhere; every other event has exactly one state it is accepted from.
func TransitionIsAcceptable(state State, event Event) bool {
	switch event.(type) {
	case Reset:
		return true
	case Select:
		_, ok := state.(WaitingForSelection)
		return ok
	case CheckFilesystemCredentials:
		_, ok := state.(RecordsFetched)
		return ok
	case SubmitFilesystemCredentials:
		_, ok := state.(FilesystemRequiresCredentials)
		return ok
	case CheckServiceType:
		_, ok := state.(FilesystemHasCredentials)
		return ok
	case SubmitServiceType:
		_, ok := state.(ServiceTypeRequired)
		return ok
	case InstallScript:
		_, ok := state.(ServiceTypeSet)
		return ok
	case SyncRecords:
		_, ok := state.(ScriptCopySucceeded)
		return ok
	}
	return false
}
