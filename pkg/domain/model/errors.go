package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrUnknownMode      = goerr.New("unknown mode")
	ErrSnapshotNotFound = goerr.New("snapshot file not found")
)
