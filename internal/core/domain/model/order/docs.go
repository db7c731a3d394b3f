// Package order holds the Order aggregate of the order desk: an order placed through
// an intake platform, its items, its payment figures and its proof-of-delivery images.
//
// The package includes:
//   - Order: the aggregate root; keeps balance == total - advance on every change
//   - Item: an order line, owned by exactly one order
//   - Status and Platform: closed enumerations stored as lower-case strings
//   - Code: the short "ORD-123456" display code
//
// Persistence and transactions live outside this package; the aggregate only
// guarantees that every in-memory state it hands out is valid.
package order
