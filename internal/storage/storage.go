package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyGame        = "game"
	keyPreferences = "preferences"
	keyStats       = "stats"
)

// SavedGame is a snapshot of the running game session.
type SavedGame struct {
	FEN       string    `json:"fen"`
	Moves     []string  `json:"moves"` // coordinate notation, e.g. "e2e4"
	Resigned  bool      `json:"resigned"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserPreferences stores per-user settings for the voice pipeline.
type UserPreferences struct {
	Username     string    `json:"username"`
	SpeakReplies bool      `json:"speak_replies"`
	LastPlayed   time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences.
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		Username:     "Player",
		SpeakReplies: true,
		LastPlayed:   time.Now(),
	}
}

// CommandStats counts how utterances fared in the parse/validate pipeline.
type CommandStats struct {
	Commands    int `json:"commands"`
	Applied     int `json:"applied"`
	ParseErrors int `json:"parse_errors"`
	NoMatch     int `json:"no_match"`
	Ambiguous   int `json:"ambiguous"`
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// Open opens a storage instance backed by the given directory.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// OpenDefault opens storage in the platform data directory.
func OpenDefault() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame persists the game snapshot.
func (s *Storage) SaveGame(game *SavedGame) error {
	game.UpdatedAt = time.Now()

	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyGame), data)
	})
}

// LoadGame loads the saved game snapshot, or nil when none exists.
func (s *Storage) LoadGame() (*SavedGame, error) {
	var game *SavedGame

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyGame))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			game = &SavedGame{}
			return json.Unmarshal(val, game)
		})
	})

	return game, err
}

// ClearGame removes the saved game snapshot.
func (s *Storage) ClearGame() error {
	return s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(keyGame))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		return err
	})
}

// SavePreferences saves user preferences.
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	prefs.LastPlayed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads user preferences, returns defaults if not found.
func (s *Storage) LoadPreferences() (*UserPreferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

// SaveStats saves command statistics.
func (s *Storage) SaveStats(stats *CommandStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads command statistics, returns empty stats if not found.
func (s *Storage) LoadStats() (*CommandStats, error) {
	stats := &CommandStats{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// RecordOutcome updates command statistics for one processed utterance.
func (s *Storage) RecordOutcome(outcome string) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.Commands++
	switch outcome {
	case "applied":
		stats.Applied++
	case "parse_error":
		stats.ParseErrors++
	case "no_match":
		stats.NoMatch++
	case "ambiguous":
		stats.Ambiguous++
	}

	return s.SaveStats(stats)
}
