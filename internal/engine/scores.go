package engine

// Scores is the high-score table: one integer per game id.
// The engine reads and writes it only when a game ends.
type Scores interface {
	Get(gameID string) (int, error)
	Set(gameID string, score int) error
}

// MemoryScores keeps high scores for the life of the process.
type MemoryScores map[string]int

// Get returns the stored score, 0 when absent.
func (m MemoryScores) Get(gameID string) (int, error) {
	return m[gameID], nil
}

// Set stores a score.
func (m MemoryScores) Set(gameID string, score int) error {
	m[gameID] = score
	return nil
}
