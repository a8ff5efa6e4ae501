package ipc

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

// Stages of a socket exchange, recorded in Error.Op.
const (
	OpDial   = "dial"
	OpWrite  = "write"
	OpRead   = "read"
	OpDecode = "decode"
)

// Error describes a failed exchange with the control socket. Op tells
// whether the compositor was never reached (dial) or the exchange broke
// after connecting (write, read, decode).
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsUnreachable reports whether err means no compositor is listening: the
// socket path does not exist or the connection was refused.
func IsUnreachable(err error) bool {
	return errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ECONNREFUSED)
}
