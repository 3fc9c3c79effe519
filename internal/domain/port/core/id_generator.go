package core

// IDGenerator produces opaque, globally unique identifiers for new entities.
// The production implementation uses UUIDs; tests substitute deterministic
// sequences.
type IDGenerator interface {
	NewID() string
}
