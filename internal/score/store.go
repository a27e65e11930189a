package score

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/orbitalgames/cosmic-standoff/internal/game"
)

// ErrNotFound indicates the score file does not exist yet. Callers treat
// this as a fresh scoreboard, not a failure.
var ErrNotFound = errors.New("score file not found")

// DecodeError indicates the score file exists but its contents cannot be
// trusted. Callers reset the scoreboard and overwrite the file.
type DecodeError struct {
	Path   string
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode score file %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("decode score file %s: %s", e.Path, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Store persists cumulative win totals as a flat JSON object keyed by
// agent name, e.g. {"Captain": 2, "Alien": 1}.
type Store struct {
	path   string
	logger zerolog.Logger
}

func NewStore(path string, logger zerolog.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger.With().Str("component", "score_store").Logger(),
	}
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load reads the win totals from disk. A missing file returns ErrNotFound;
// unparseable or out-of-range contents return a *DecodeError. Both leave
// the caller free to start from zero.
func (s *Store) Load() (map[string]int, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read score file %s: %w", s.path, err)
	}

	var totals map[string]int
	if err := json.Unmarshal(data, &totals); err != nil {
		return nil, &DecodeError{Path: s.path, Reason: "invalid JSON", Err: err}
	}

	for agent, wins := range totals {
		if wins < 0 {
			return nil, &DecodeError{
				Path:   s.path,
				Reason: fmt.Sprintf("negative win count %d for %q", wins, agent),
			}
		}
	}

	s.logger.Debug().
		Int("captain_wins", totals[game.CaptainAgent.String()]).
		Int("alien_wins", totals[game.AlienAgent.String()]).
		Msg("Loaded score file")

	return totals, nil
}

// Save writes the win totals to disk, creating the parent directory if
// needed.
func (s *Store) Save(totals map[string]int) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create score directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(totals, "", "  ")
	if err != nil {
		return fmt.Errorf("encode score totals: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write score file %s: %w", s.path, err)
	}

	s.logger.Debug().
		Int("captain_wins", totals[game.CaptainAgent.String()]).
		Int("alien_wins", totals[game.AlienAgent.String()]).
		Msg("Saved score file")

	return nil
}
