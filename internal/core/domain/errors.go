package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid room state transition")
	ErrRoomUnavailable   = errors.New("room not available")
	ErrInvalidDateRange  = errors.New("check-out date must be after check-in date")
	ErrInvalidGuestCount = errors.New("guest count must be at least 1")
	ErrInvalidInput      = errors.New("invalid input")

	ErrGuestAlreadyActive = errors.New("guest already has an active stay")
	ErrGuestNotCheckedIn  = errors.New("guest has not checked in")

	ErrRoomNotFound  = fmt.Errorf("room %w", ErrNotFound)
	ErrGuestNotFound = fmt.Errorf("guest %w", ErrNotFound)
)
