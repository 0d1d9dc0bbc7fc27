// Package errors is the one import domain and storage code needs for both
// sentinel matching and stack-carrying wraps.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

//nolint:gochecknoglobals
var (
	// New creates a plain sentinel, without a stack trace.
	New = stderrors.New
	Is  = stderrors.Is
	As  = stderrors.As

	// Wrap and Wrapf record a stack trace; both return nil for a nil err.
	Wrap  = pkgerrors.Wrap
	Wrapf = pkgerrors.Wrapf
)
