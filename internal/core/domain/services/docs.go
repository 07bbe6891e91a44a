// Package services provides domain services that turn a classified customer
// message into a reply.
//
// The package includes:
//   - ReplyComposer: dispatches on the closed chat.Intent set and renders order summaries
//
// The composer is pure. Order lookups are passed in as a function, so the same
// dispatch runs against PostgreSQL in production and against in-memory fakes in tests.
package services
