package service

import (
	"errors"

	"github.com/vietanh2810/medicamp-api/internal/repository"
)

var (
	ErrInvalidID       = repository.ErrInvalidID
	ErrUserNotFound    = repository.ErrUserNotFound
	ErrUserEmailExists = repository.ErrUserEmailExists

	ErrNotOwner   = errors.New("resource belongs to another user")
	ErrEmptyPatch = errors.New("nothing to update")

	// ErrIncomplete marks a multi-step write that stopped after some steps were applied.
	// The accompanying outcome tells which ones.
	ErrIncomplete = errors.New("operation partially applied")
)
