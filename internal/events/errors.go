package events

import (
	"errors"
	"os"
	"syscall"
)

// ErrorCode says why the daemon could not be reached
type ErrorCode int

const (
	ErrSocketNotFound ErrorCode = iota
	ErrSocketPermission
	ErrDaemonNotRunning
	ErrConnectionRefused
)

const startHint = "Live updates need the daemon: run taskmanager-daemon in the background"

// DaemonError describes a failed daemon connection. Commands keep working
// without one; the message and hint only reach the debug log.
type DaemonError struct {
	Code    ErrorCode
	Message string
	Hint    string
	Err     error
}

func (e *DaemonError) Error() string {
	if e.Hint != "" {
		return e.Message + ". " + e.Hint
	}
	return e.Message
}

func (e *DaemonError) Unwrap() error {
	return e.Err
}

// daemonFailures are checked in order; the first match classifies the error
var daemonFailures = []struct {
	code    ErrorCode
	match   func(error) bool
	message string
	hint    string
}{
	{
		code:    ErrSocketNotFound,
		match:   func(err error) bool { return errors.Is(err, os.ErrNotExist) },
		message: "Socket file not found",
		hint:    startHint,
	},
	{
		code:    ErrSocketPermission,
		match:   func(err error) bool { return errors.Is(err, os.ErrPermission) },
		message: "Permission denied",
		hint:    "The socket lives in ~/.taskmanager/, which must be owned by you (chmod 700)",
	},
	{
		code:    ErrConnectionRefused,
		match:   func(err error) bool { return errors.Is(err, syscall.ECONNREFUSED) },
		message: "Connection refused",
		hint:    "A stale socket was left behind; restarting taskmanager-daemon removes it",
	},
}

// ClassifyDaemonError wraps a connection failure in a DaemonError.
// Unrecognized failures are reported as ErrDaemonNotRunning.
func ClassifyDaemonError(err error) *DaemonError {
	if err == nil {
		return nil
	}
	for _, f := range daemonFailures {
		if f.match(err) {
			return &DaemonError{Code: f.code, Message: f.message, Hint: f.hint, Err: err}
		}
	}
	return &DaemonError{
		Code:    ErrDaemonNotRunning,
		Message: "Daemon not running",
		Hint:    startHint,
		Err:     err,
	}
}
