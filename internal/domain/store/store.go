package store

import "errors"

// ErrUnavailable is returned by write operations when no relational store is attached.
var ErrUnavailable = errors.New("store unavailable")

// Status reports whether repositories are backed by a live store.
type Status interface {
	Available() bool
}

type staticStatus bool

func (s staticStatus) Available() bool {
	return bool(s)
}

// Attached is the status of a process that opened its store at startup.
func Attached() Status {
	return staticStatus(true)
}

// Detached is the status of a process running without a store.
func Detached() Status {
	return staticStatus(false)
}
