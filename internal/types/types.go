// internal/types/types.go
package types

// EntityID identifies an entity in the registry. IDs grow monotonically and are
// never reused, so a stale ID held by another entity simply stops resolving.
type EntityID uint64

// NoEntity is the zero handle.
const NoEntity EntityID = 0
