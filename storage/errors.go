package storage

import (
	"errors"
)

var (
	// Note: there is another not found error: badger.ErrKeyNotFound. The
	// difference is that badger.ErrKeyNotFound is returned by the badger
	// API, while modules in the storage/badger package translate it and
	// return storage.ErrNotFound for all not-found conditions.
	ErrNotFound = errors.New("key not found")

	ErrAlreadyExists = errors.New("key already exists")
)
