package vlist

import (
	"errors"

	"github.com/rshade/vlist/internal/window"
)

// Sentinel errors returned by the lifecycle operations.
var (
	// ErrInvalidItemHeight is returned by Type.New for item heights <= 0.
	ErrInvalidItemHeight = window.ErrInvalidItemHeight

	// ErrNilRenderFunc is returned by Type.New when the type has no render callback.
	ErrNilRenderFunc = errors.New("list type has no render callback")

	// ErrNilEnvironment is returned by Mount without a viewport environment.
	ErrNilEnvironment = errors.New("viewport environment is nil")

	// ErrNilRenderer is returned by Mount without a host renderer.
	ErrNilRenderer = errors.New("host renderer is nil")

	// ErrAlreadyMounted is returned when Mount or Update targets a list that
	// is not fresh.
	ErrAlreadyMounted = errors.New("list is not in its initial state")

	// ErrNotMounted is returned by Update when the previous list does not own
	// live resources.
	ErrNotMounted = errors.New("previous list is not mounted")
)
