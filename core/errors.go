package core

import (
	"fmt"
	"net"
)

// ConnError reports which stage of serving a connection failed
type ConnError struct {
	Op     string // read, parse, handle or write
	Remote string
	Err    error
}

func newConnError(op string, conn net.Conn, err error) *ConnError {
	ce := &ConnError{Op: op, Err: err}
	if addr := conn.RemoteAddr(); addr != nil {
		ce.Remote = addr.String()
	}
	return ce
}

func (e *ConnError) Error() string {
	if e.Remote == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Remote, e.Err)
}

func (e *ConnError) Unwrap() error {
	return e.Err
}
