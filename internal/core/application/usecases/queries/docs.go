// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read the store directly and return view structs; they never
// mutate state and never participate in a unit of work.
//
// Visibility is enforced inside each handler: administrators see every order,
// everyone else sees only orders they created or are assigned to.
package queries
