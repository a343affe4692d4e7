// Package errors provides structured error types for the anvil library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the affected object handle and type when
// known, plus a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDispatch, errors.KindDriverFailure).
//		Object(handle, vk.ObjectTypeBuffer.String()).
//		Detail("set object name").
//		Cause(result).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.DriverFailure(result, "set object name")
//	err := errors.InvalidData(errors.PhaseReport, "tag is not valid hex")
//
// All errors implement the standard error interface and support errors.Is/As.
//
// Contract violations (wrong provider mode, duplicate handles) are NOT
// represented here; those are programmer errors and panic at the call site.
package errors
