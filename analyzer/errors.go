package analyzer

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorKind buckets checker failures. The orchestrator only uses it to decide
// that a signal is unknown; no decision logic branches on the kind.
type ErrorKind string

const (
	KindTimeout          ErrorKind = "timeout"
	KindConnectionFailed ErrorKind = "connection_failed"
	KindParseFailure     ErrorKind = "parse_failure"
	KindNotFound         ErrorKind = "not_found"
)

// CheckError is the uniform error returned by every I/O checker boundary.
type CheckError struct {
	Op   string
	Kind ErrorKind
	Err  error
}

func (e *CheckError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *CheckError) Unwrap() error { return e.Err }

func checkErr(op string, kind ErrorKind, err error) *CheckError {
	return &CheckError{Op: op, Kind: kind, Err: err}
}

// classifyNetErr maps a transport-level error to a CheckError kind.
func classifyNetErr(op string, err error) *CheckError {
	if errors.Is(err, context.DeadlineExceeded) {
		return checkErr(op, KindTimeout, err)
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return checkErr(op, KindTimeout, err)
	}
	var derr *net.DNSError
	if errors.As(err, &derr) && derr.IsNotFound {
		return checkErr(op, KindNotFound, err)
	}
	return checkErr(op, KindConnectionFailed, err)
}
