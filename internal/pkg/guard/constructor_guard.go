// Package guard detects domain objects and use case inputs that were built as
// zero values instead of through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded as a private field. Its zero value fails
// validation; only NewConstructorGuard produces a passing guard.
//
// Example:
//
//	var ErrReplyQueryIsNotConstructed = errors.New("query must be created via NewReplyQuery")
//
//	type ReplyQuery struct {
//	    message string
//	    guard   guard.ConstructorGuard
//	}
//
//	func (q ReplyQuery) Validate() error {
//	    return q.guard.Validate(ErrReplyQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil for a constructed guard, otherwise err
// (or ErrDefaultConstructorGuard when err is nil).
func (g ConstructorGuard) Validate(err error) error {
	if g.constructed {
		return nil
	}
	if err == nil {
		return ErrDefaultConstructorGuard
	}
	return err
}
