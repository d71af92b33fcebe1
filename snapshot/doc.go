// Package snapshot persists and restores the resting book. A snapshot
// is the set of active orders in price-time order plus the journal
// sequence it covers; restoring it and replaying newer journal records
// rebuilds the exact engine state.
//
// The package also provides epoch-scoped readers so snapshots taken
// while the matcher runs observe a consistent view without locks.
package snapshot
