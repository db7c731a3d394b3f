// Package kernel provides the value objects shared by the order desk domain model.
//
// The package includes:
//   - UUID: identifiers for orders, order items and users
//   - Money: fixed-point amounts with two fraction digits backed by shopspring/decimal
//   - Date: calendar dates exchanged as YYYY-MM-DD
//
// Zero values are invalid; each type exposes Validate so aggregates can reject
// values that bypassed the constructors.
package kernel
