package db

import "fmt"

// createTables 如果数据库中不存在必要的表，则创建它们
func (s *Store) createTables() error {
	createSuggestionsTableSQL := `
	CREATE TABLE IF NOT EXISTS suggestions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		author_id TEXT NOT NULL,
		author_tag TEXT NOT NULL,
		content TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'Pending',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		message_id TEXT,
		channel_id TEXT
	);`

	if _, err := s.db.Exec(createSuggestionsTableSQL); err != nil {
		return fmt.Errorf("creating suggestions table: %w", err)
	}
	return nil
}
