package repository

import "errors"

var (
	ErrNotFound      = errors.New("entity not found")
	ErrAlreadyExists = errors.New("entity already exists")
	ErrUnauthorized  = errors.New("actor is not allowed to act on this entity")
	ErrSnapshotRead  = errors.New("snapshot could not be read")
	ErrSnapshotWrite = errors.New("snapshot could not be written")
)
