package organism

import "errors"

var (
	// ErrMissingHook means a kit lacks its animal or plant constructor.
	ErrMissingHook = errors.New("missing hook")
	// ErrInvalidCount means a negative number of animals or plants was requested.
	ErrInvalidCount = errors.New("invalid count")
	// ErrUnknownVariant means no kit is registered under the requested name.
	ErrUnknownVariant = errors.New("unknown variant")
)
