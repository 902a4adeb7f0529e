// Package memory provides in-memory implementations of the read-only
// interfaces defined in the internal/store package. Datasets are copied
// and indexed once at construction and never mutated afterwards, so the
// stores are safe for concurrent use without locking.
package memory
