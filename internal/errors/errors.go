// Package errors is the one errors import for the module. Tree inspection
// comes from the standard library; annotation comes from pkg/errors so
// that wrapped failures keep the stack of the first wrap.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Inspection.
var (
	New    = stderrors.New
	Is     = stderrors.Is
	As     = stderrors.As
	Unwrap = stderrors.Unwrap
	Join   = stderrors.Join
)

// Annotation. Each of these records a stack trace except WithMessage.
var (
	Wrap        = pkgerrors.Wrap
	Wrapf       = pkgerrors.Wrapf
	WithStack   = pkgerrors.WithStack
	WithMessage = pkgerrors.WithMessage
	Errorf      = pkgerrors.Errorf
	Cause       = pkgerrors.Cause
)

// AsType is As for callers that want the typed value back:
//
//	if appErr, ok := errors.AsType[*domainerrors.BaseError](err); ok { ... }
func AsType[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}
