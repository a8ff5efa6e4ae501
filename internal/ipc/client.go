package ipc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"
	"unicode/utf8"
)

// DefaultTimeout bounds a full command exchange when the caller does not
// pick one.
const DefaultTimeout = 5 * time.Second

// closeWriter is satisfied by connections that can shut down their write
// half while keeping the read half open, as *net.UnixConn does.
type closeWriter interface {
	CloseWrite() error
}

// Client performs one-shot command exchanges against the Hyprland control
// socket. The compositor answers exactly one command per connection, so
// every call dials fresh, sends the command, half-closes the write side,
// and reads the reply until the compositor closes.
type Client struct {
	path    string
	timeout time.Duration
}

// NewClient returns a client for the control socket at path.
func NewClient(path string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{path: path, timeout: timeout}
}

// Path returns the socket path the client exchanges commands with.
func (c *Client) Path() string { return c.path }

// Command sends one command line and returns the compositor's complete
// reply as text.
func (c *Client) Command(ctx context.Context, command string) (string, error) {
	dialer := net.Dialer{Timeout: c.timeout}
	conn, err := dialer.DialContext(ctx, "unix", c.path)
	if err != nil {
		return "", &Error{Op: OpDial, Path: c.path, Err: err}
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
		return "", &Error{Op: OpWrite, Path: c.path, Err: fmt.Errorf("set deadline: %w", err)}
	}

	// Close the connection when the caller gives up so a blocked read
	// returns right away instead of waiting out the deadline.
	watchDone := make(chan struct{})
	defer close(watchDone)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-watchDone:
		}
	}()

	if _, err := conn.Write([]byte(command)); err != nil {
		return "", &Error{Op: OpWrite, Path: c.path, Err: err}
	}
	if cw, ok := conn.(closeWriter); ok {
		if err := cw.CloseWrite(); err != nil {
			return "", &Error{Op: OpWrite, Path: c.path, Err: err}
		}
	}

	reply, err := io.ReadAll(conn)
	if err != nil {
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		return "", &Error{Op: OpRead, Path: c.path, Err: err}
	}
	if !utf8.Valid(reply) {
		return "", &Error{Op: OpDecode, Path: c.path, Err: errors.New("reply is not valid UTF-8")}
	}

	return string(reply), nil
}
