// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. The runner depends
// only on these interfaces, never on concrete implementations.
package ports

import "fmt"

// AnswerKey identifies one solved answer: a puzzle part applied to one
// exact input.
type AnswerKey struct {
	Day       int
	Part      string
	InputHash string // hex sha256 of the normalized input
}

func (k AnswerKey) String() string {
	return fmt.Sprintf("day%02d/%s/%s", k.Day, k.Part, k.InputHash)
}

// AnswerCache persists answers across runs so an unchanged input is never
// solved twice. Concurrent reads are safe; writes are serialized by the
// adapter.
type AnswerCache interface {
	// Get returns the stored answer. ok is false on a miss; a miss is not an
	// error.
	Get(key AnswerKey) (answer string, ok bool, err error)

	// Put stores answer under key, replacing any prior value.
	Put(key AnswerKey, answer string) error

	// Clear removes every stored answer. Clearing an empty cache is not an
	// error.
	Clear() error

	// Close releases the backing store.
	Close() error
}
