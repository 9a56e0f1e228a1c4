// Package bbolt implements the ports.AnswerCache interface using bbolt (embedded B+ tree).
// Each day gets its own top-level bucket ("day07"); inside it answers are keyed
// by "part:inputhash". Writes are transactional, so a crash mid-write cannot
// corrupt previously committed answers.
package bbolt

import (
	"fmt"
	"time"

	"github.com/corey/adco/internal/ports"
	bolt "go.etcd.io/bbolt"
)

// Store implements ports.AnswerCache backed by bbolt.
type Store struct {
	db *bolt.DB
}

var _ ports.AnswerCache = (*Store)(nil)

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

func dayBucket(day int) []byte {
	return []byte(fmt.Sprintf("day%02d", day))
}

func answerKey(key ports.AnswerKey) []byte {
	return []byte(key.Part + ":" + key.InputHash)
}

// Get returns the cached answer for key.
func (s *Store) Get(key ports.AnswerKey) (string, bool, error) {
	var answer []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(dayBucket(key.Day))
		if b == nil {
			return nil
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		if v := b.Get(answerKey(key)); v != nil {
			answer = make([]byte, len(v))
			copy(answer, v)
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	if answer == nil {
		return "", false, nil
	}
	return string(answer), true, nil
}

// Put stores answer for key, overwriting any earlier answer.
func (s *Store) Put(key ports.AnswerKey, answer string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(dayBucket(key.Day))
		if err != nil {
			return err
		}
		return b.Put(answerKey(key), []byte(answer))
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// Clear drops every day bucket.
func (s *Store) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		var names [][]byte
		if err := tx.ForEach(func(name []byte, _ *bolt.Bucket) error {
			names = append(names, append([]byte(nil), name...))
			return nil
		}); err != nil {
			return err
		}
		for _, name := range names {
			if err := tx.DeleteBucket(name); err != nil {
				return fmt.Errorf("delete bucket %s: %w", name, err)
			}
		}
		return nil
	})
}

// Len reports how many answers are stored across all days.
func (s *Store) Len() (int, error) {
	n := 0
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.ForEach(func(_ []byte, b *bolt.Bucket) error {
			n += b.Stats().KeyN
			return nil
		})
	})
	return n, err
}
