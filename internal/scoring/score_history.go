package scoring

import (
	"sort"
	"time"
)

// ScoreHistory holds the results of finished games for the lifetime of the
// process. Nothing is written to disk.
type ScoreHistory struct {
	Entries        []ScoreHistoryEntry
	HighScoreEntry *ScoreHistoryEntry
}

// ScoreHistoryEntry represents one finished game.
type ScoreHistoryEntry struct {
	Score     int
	Stage     int
	Lines     int
	Timestamp string
}

// NewEntry stamps a result with the current time.
func NewEntry(score, stage, lines int) ScoreHistoryEntry {
	return ScoreHistoryEntry{
		Score:     score,
		Stage:     stage,
		Lines:     lines,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// Record appends a finished game and updates the high score.
func (sh *ScoreHistory) Record(entry ScoreHistoryEntry) {
	sh.Entries = append(sh.Entries, entry)
	if sh.HighScoreEntry == nil || entry.Score > sh.HighScoreEntry.Score {
		e := entry
		sh.HighScoreEntry = &e
	}
}

// GetHighScoreEntry returns the best recorded game, or nil if none.
func (sh ScoreHistory) GetHighScoreEntry() *ScoreHistoryEntry {
	return sh.HighScoreEntry
}

// GetNScoreEntries returns the top N entries, highest score first.
func (sh ScoreHistory) GetNScoreEntries(n int) []ScoreHistoryEntry {
	// Make a copy to avoid modifying the original slice.
	entriesCopy := make([]ScoreHistoryEntry, len(sh.Entries))
	copy(entriesCopy, sh.Entries)

	sort.SliceStable(entriesCopy, func(i, j int) bool {
		return entriesCopy[i].Score > entriesCopy[j].Score
	})

	if len(entriesCopy) < n {
		return entriesCopy
	}
	return entriesCopy[:n]
}

// GotHighScore reports whether score matches or beats every recorded game.
func (sh ScoreHistory) GotHighScore(score int) bool {
	if sh.HighScoreEntry == nil {
		return true
	}
	return score >= sh.HighScoreEntry.Score
}

// Attempts returns the number of finished games.
func (sh ScoreHistory) Attempts() int {
	return len(sh.Entries)
}
