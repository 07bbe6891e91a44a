// Package errs provides the typed errors shared across the support bot.
//
// Every error kind follows the same shape:
//   - a sentinel (ErrObjectNotFound, ErrDependencyFailed, ...) usable with errors.Is
//   - a struct carrying details, usable with errors.As
//   - New...Error and New...ErrorWithCause constructors
//   - Unwrap returning the sentinel so callers can classify without knowing the struct
//
// The chat use case relies on this split to tell a normal "no such order" reply
// apart from a failing dependency, which must surface as a backend error.
package errs
