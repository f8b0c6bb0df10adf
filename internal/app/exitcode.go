package app

import "github.com/samdwyer/goblinking/internal/rando"

const (
	ExitOK         = 0 // Successful usage
	ExitBadEnv     = 1 // Missing or corrupt database
	ExitBadInput   = 2 // Invalid caller-supplied value
	ExitUnexpected = 3 // Bug or unclassified failure
)

// ExitCode maps a Run error to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch rando.KindOf(err) {
	case rando.KindNotFound, rando.KindInvalidResource, rando.KindEmptyData, rando.KindInsufficientData:
		return ExitBadEnv
	case rando.KindInvalidArgument:
		return ExitBadInput
	default:
		return ExitUnexpected
	}
}
