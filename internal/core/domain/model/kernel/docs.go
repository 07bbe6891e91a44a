// Package kernel holds the value objects shared by the order and chat models.
//
// The package includes:
//   - OrderNumber: the positive numeric key customers quote in chat messages
//   - Money: a non-negative amount rendered with a currency symbol
//
// Both are immutable and validated at construction; their zero values fail
// Validate so that objects restored without a constructor are caught early.
package kernel
