package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every domain error wraps exactly one of these; anything else
// returned by a service is an infrastructure failure.
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Lookup errors
var (
	ErrChampionNotFound    = fmt.Errorf("champion %w", ErrNotFound)
	ErrProfileNotFound     = fmt.Errorf("profile %w", ErrNotFound)
	ErrItemNotFound        = fmt.Errorf("item %w", ErrNotFound)
	ErrAssociationNotFound = fmt.Errorf("champion item association %w", ErrNotFound)
	ErrMatchupNotFound     = fmt.Errorf("matchup %w", ErrNotFound)
	ErrUserProfileNotFound = fmt.Errorf("user profile %w", ErrNotFound)
)

// Uniqueness errors
var (
	ErrChampionNameTaken = fmt.Errorf("%w: champion name already exists", ErrConflict)
	ErrItemNameTaken     = fmt.Errorf("%w: item name already exists", ErrConflict)
	ErrMatchupExists     = fmt.Errorf("%w: matchup already exists", ErrConflict)
)

// Validation errors
var (
	ErrSelfMatchup       = fmt.Errorf("%w: a champion cannot be matched against itself", ErrInvalidArgument)
	ErrWinRateOutOfRange = fmt.Errorf("%w: win rate must be between 0 and 100", ErrInvalidArgument)
	ErrNameRequired      = fmt.Errorf("%w: name is required", ErrInvalidArgument)
)
