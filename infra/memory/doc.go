// Package memory provides the primitives for order reuse and safe
// reclamation: a typed object pool, a retire ring for terminal orders,
// and global epoch tracking. The service layer retires every fully
// filled or cancelled order through the ring and recycles it back into
// the pool once no snapshot reader can still observe it.
//
// The package is dependency-free and knows nothing about the book.
package memory
