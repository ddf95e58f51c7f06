package chart

import "errors"

var (
	// ErrLifecycle is wrapped by errors returned when Mount or Unmount is
	// called in the wrong state.
	ErrLifecycle = errors.New("chart lifecycle")
	// ErrConfig is wrapped by errors describing unusable configuration.
	ErrConfig = errors.New("chart config")
)
