package database

import (
	"errors"
	"fmt"
)

// Entities named in OpError.
const (
	EntityDatabase = "database"
	EntitySetting  = "setting"
	EntitySnapshot = "snapshot"
)

// ErrSnapshotCorrupted marks stored courses that could not be decoded.
// LoadSnapshot never returns it; it only appears in log output.
var ErrSnapshotCorrupted = errors.New("stored courses are not valid JSON")

type OpError struct {
	Op       string
	Resource string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(resource, op string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: resource, Err: err}
}
