package badger

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/poiesic/rake/corpus"
)

// Store is a persistent word-frequency corpus backed by BadgerDB.
// It implements corpus.Corpus and is safe for concurrent reads.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

var _ corpus.Corpus = (*Store)(nil)

// badgerLoggerAdapter adapts slog.Logger to badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// Open opens a corpus store at the specified path.
// Creates the directory if it doesn't exist.
func Open(filePath string, inMemory bool) (*Store, error) {
	var opts badger.Options

	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		// Ensure directory exists
		info, err := os.Stat(filePath)
		if err != nil {
			if os.IsNotExist(err) {
				if err := os.MkdirAll(filePath, 0755); err != nil {
					return nil, err
				}
				info, err = os.Stat(filePath)
				if err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", filePath)
		}
		opts = badger.DefaultOptions(filePath)
	}

	opts.Logger = &badgerLoggerAdapter{logger: slog.Default()}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{
		db:     db,
		logger: slog.Default(),
	}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Lookup implements corpus.Corpus. Read failures other than a missing key
// are logged and reported as absence.
func (s *Store) Lookup(word string) (corpus.Entry, bool) {
	var entry corpus.Entry
	found := false

	err := s.db.View(func(tx *badger.Txn) error {
		item, err := tx.Get(makeEntryKey(word))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			entry, err = corpus.UnmarshalEntry(val)
			if err != nil {
				return err
			}
			found = true
			return nil
		})
	})
	if err != nil {
		s.logger.Error("error reading corpus entry", "word", word, "err", err)
		return corpus.Entry{}, false
	}

	return entry, found
}

// Put stores a single corpus entry for word.
func (s *Store) Put(word string, entry corpus.Entry) error {
	return s.db.Update(func(tx *badger.Txn) error {
		return tx.Set(makeEntryKey(word), corpus.MarshalEntry(entry))
	})
}

// Import bulk-loads all entries of an in-memory corpus. Existing entries
// for the same words are overwritten.
func (s *Store) Import(m corpus.Map) error {
	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	for word, entry := range m {
		if err := wb.Set(makeEntryKey(word), corpus.MarshalEntry(entry)); err != nil {
			return err
		}
	}
	return wb.Flush()
}

// Count returns the number of stored entries.
func (s *Store) Count() (int, error) {
	count := 0
	err := s.db.View(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(entryPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
