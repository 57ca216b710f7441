package component

import "github.com/vango-dev/flux/internal/errors"

// Sentinels for errors.Is against errors returned by Mounter.Mount.
var (
	ErrMountContract  error = errors.New("E101")
	ErrRenderContract error = errors.New("E102")
	ErrComponentPanic error = errors.New("E103")
)
