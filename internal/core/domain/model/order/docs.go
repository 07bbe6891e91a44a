// Package order models a customer order as the support bot sees it: a record
// looked up by its order number and rendered back to the customer.
//
// The package includes:
//   - Order: an immutable aggregate holding number, status, items, total,
//     customer name, address and order date
//
// Key business rules:
//   - An order must carry a valid OrderNumber and a non-negative total
//   - Status, names, address and date are free-form text and are not validated
//   - Items keep their insertion order, which is also their display order
//
// Orders are read-only from the chat flow's point of view; they are created
// through the admin API and never modified afterwards.
package order
