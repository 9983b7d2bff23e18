package store

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
)

var (
	// ErrStoreUnavailable is returned by every operation issued before
	// Connect or after Close.
	ErrStoreUnavailable = errors.New("database connection not established")

	// ErrNoDocuments is returned by FindOne when nothing matches the filter.
	ErrNoDocuments = errors.New("no documents in result")
)

// Options configures how the underlying badger database is opened.
type Options struct {
	Path     string
	InMemory bool
	// Logger receives badger's internal log output. A nil logger silences it.
	Logger badger.Logger
}

// Store is the process-wide document store handle. It is connected once at
// startup and shared by every repository.
type Store struct {
	mutex sync.RWMutex
	db    *badger.DB
	path  string
}

// New returns a store that is not yet connected.
func New() *Store {
	return &Store{}
}

// Open creates a store and connects it in one step.
func Open(opts Options) (*Store, error) {
	s := New()
	if err := s.Connect(opts); err != nil {
		return nil, err
	}
	return s, nil
}

// Connect opens the badger database. Calling Connect on a connected store is
// an error.
func (s *Store) Connect(opts Options) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.db != nil {
		return errors.New("store already connected")
	}

	var bopts badger.Options
	if opts.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if opts.Path == "" {
			return errors.New("store path is required")
		}
		if err := os.MkdirAll(opts.Path, 0755); err != nil {
			return fmt.Errorf("failed to create store directory: %w", err)
		}
		bopts = badger.DefaultOptions(opts.Path)
	}
	bopts = bopts.
		WithLogger(opts.Logger).
		WithNumVersionsToKeep(1)

	db, err := badger.Open(bopts)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	s.db = db
	s.path = opts.Path
	return nil
}

// Connected reports whether the store currently holds an open database.
func (s *Store) Connected() bool {
	_, err := s.handle()
	return err == nil
}

// Close releases the database. Closing an unconnected store is a no-op.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Collection returns a handle scoped to the named collection. The handle is
// cheap and may be created per call.
func (s *Store) Collection(name string) *Collection {
	return &Collection{store: s, name: name}
}

// Backup streams every key in the store to w.
func (s *Store) Backup(w io.Writer) error {
	db, err := s.handle()
	if err != nil {
		return err
	}
	_, err = db.Backup(w, 0)
	return err
}

// Load restores a stream produced by Backup.
func (s *Store) Load(r io.Reader) error {
	db, err := s.handle()
	if err != nil {
		return err
	}
	return db.Load(r, 4)
}

// DropAll removes every document from every collection.
func (s *Store) DropAll() error {
	db, err := s.handle()
	if err != nil {
		return err
	}
	return db.DropAll()
}

func (s *Store) handle() (*badger.DB, error) {
	if s == nil {
		return nil, ErrStoreUnavailable
	}
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.db == nil || s.db.IsClosed() {
		return nil, ErrStoreUnavailable
	}
	return s.db, nil
}

// view and update run fn inside a badger transaction, translating a closed
// database into ErrStoreUnavailable.
func (s *Store) view(fn func(txn *badger.Txn) error) error {
	db, err := s.handle()
	if err != nil {
		return err
	}
	return translate(db.View(fn))
}

// update retries fn when badger reports a conflict with a concurrent writer,
// so read-modify-write operations on the same document resolve as last write
// wins.
func (s *Store) update(fn func(txn *badger.Txn) error) error {
	db, err := s.handle()
	if err != nil {
		return err
	}
	for attempt := 0; ; attempt++ {
		err = db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) || attempt >= maxConflictRetries {
			return translate(err)
		}
		time.Sleep(conflictBackoff(attempt))
	}
}

const maxConflictRetries = 100

// conflictBackoff spreads retries out so contending writers stop colliding.
func conflictBackoff(attempt int) time.Duration {
	ceiling := time.Duration(min(attempt+1, 20)) * 100 * time.Microsecond
	return time.Duration(rand.Int64N(int64(ceiling))) + 1
}

func translate(err error) error {
	if errors.Is(err, badger.ErrDBClosed) {
		return ErrStoreUnavailable
	}
	return err
}
