// internal/types/id.go
package types

// EntityID identifies an entry of a pool. Zero is never allocated.
type EntityID uint64
