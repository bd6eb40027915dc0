package manager

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

const (
	statsFile  = "scores.json"
	maxHistory = 100 // Scores kept on disk
)

// ScoreRecord is one finished game.
type ScoreRecord struct {
	Session string    `json:"session"`
	Variant string    `json:"variant"`
	Score   int       `json:"score"`
	EndTime time.Time `json:"endTime"`
}

type GameStats struct {
	HighScore    int           `json:"highScore"`
	ScoreHistory []ScoreRecord `json:"scoreHistory"`
}

// Summary aggregates the score history.
type Summary struct {
	Games  int
	Best   int
	Mean   float64
	Median float64
}

// StateManager keeps the best score and recent results of this machine.
type StateManager struct {
	dir     string
	session string
	variant string
	stats   GameStats
}

func NewStateManager(dir, variant string) *StateManager {
	return &StateManager{
		dir:     dir,
		session: uuid.NewString(),
		variant: variant,
	}
}

func (sm *StateManager) Session() string {
	return sm.session
}

func (sm *StateManager) path() string {
	return filepath.Join(sm.dir, statsFile)
}

// Load reads saved stats. A missing file is not an error.
func (sm *StateManager) Load() error {
	data, err := os.ReadFile(sm.path())
	if err != nil {
		if os.IsNotExist(err) {
			sm.stats = GameStats{}
			return nil
		}
		return errors.Wrap(err, "failed to read stats file")
	}

	var stats GameStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return errors.Wrapf(err, "failed to parse %s", sm.path())
	}
	sm.stats = stats
	return nil
}

// Save writes the stats next to a temporary file and renames it into place.
func (sm *StateManager) Save() error {
	if err := os.MkdirAll(sm.dir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create data directory")
	}

	data, err := json.MarshalIndent(sm.stats, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal stats data")
	}

	tmp := sm.path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrap(err, "failed to write stats file")
	}
	if err := os.Rename(tmp, sm.path()); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrap(err, "failed to replace stats file")
	}
	return nil
}

// Record adds a finished game and reports whether it set a new best.
func (sm *StateManager) Record(score int) bool {
	sm.stats.ScoreHistory = append(sm.stats.ScoreHistory, ScoreRecord{
		Session: sm.session,
		Variant: sm.variant,
		Score:   score,
		EndTime: time.Now(),
	})
	if n := len(sm.stats.ScoreHistory); n > maxHistory {
		sm.stats.ScoreHistory = slices.Clone(sm.stats.ScoreHistory[n-maxHistory:])
	}

	if score > sm.stats.HighScore {
		sm.stats.HighScore = score
		return true
	}
	return false
}

func (sm *StateManager) Best() int {
	return sm.stats.HighScore
}

func (sm *StateManager) History() []ScoreRecord {
	return sm.stats.ScoreHistory
}

func (sm *StateManager) Summary() Summary {
	s := Summary{Best: sm.stats.HighScore, Games: len(sm.stats.ScoreHistory)}
	if s.Games == 0 {
		return s
	}

	scores := make([]float64, 0, s.Games)
	for _, r := range sm.stats.ScoreHistory {
		scores = append(scores, float64(r.Score))
	}
	slices.Sort(scores)
	s.Mean = stat.Mean(scores, nil)
	s.Median = stat.Quantile(0.5, stat.Empirical, scores, nil)
	return s
}
