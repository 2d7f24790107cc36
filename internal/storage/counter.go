package storage

// Counter exposes the store as the integer get/set high-score table the
// engine writes at game over. Every Set is kept as a history row tagged with
// the session that produced it.
type Counter struct {
	store   *Store
	session string
}

// Counter binds the store to a play session.
func (s *Store) Counter(sessionID string) *Counter {
	return &Counter{store: s, session: sessionID}
}

// Get returns the best recorded score for a game.
func (c *Counter) Get(gameID string) (int, error) {
	return c.store.HighScore(gameID)
}

// Set records a new score for a game.
func (c *Counter) Set(gameID string, score int) error {
	_, err := c.store.SaveScore(gameID, c.session, score)
	return err
}
