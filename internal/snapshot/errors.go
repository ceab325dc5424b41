package snapshot

import "errors"

var (
	ErrSnapshotNotFound  = errors.New("snapshot not found")
	ErrSnapshotExists    = errors.New("snapshot already exists")
	ErrUnsupportedDriver = errors.New("unsupported store driver")
)
