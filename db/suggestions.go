package db

import (
	"database/sql"
	"fmt"
	"strings"

	"suggestbot/model"
)

const suggestionCols = `id, author_id, COALESCE(author_tag, '') as author_tag, content, status,
	created_at, COALESCE(message_id, '') as message_id, COALESCE(channel_id, '') as channel_id`

// rowScanner is an interface that can be satisfied by *sql.Row or *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanSuggestion scans a row into a Suggestion struct.
func scanSuggestion(scanner rowScanner) (*model.Suggestion, error) {
	var sub model.Suggestion
	var status string
	err := scanner.Scan(
		&sub.ID, &sub.AuthorID, &sub.AuthorTag, &sub.Content, &status,
		&sub.CreatedAt, &sub.Message.MessageID, &sub.Message.ChannelID,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Return nil, nil if no suggestion is found
		}
		return nil, err
	}
	sub.Status = model.Status(status)
	return &sub, nil
}

// Create inserts a new Pending suggestion and returns its assigned id.
func (s *Store) Create(authorID, authorTag, content string, ref model.MessageRef) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO suggestions (author_id, author_tag, content, message_id, channel_id)
		VALUES (?, ?, ?, ?, ?)`,
		authorID, authorTag, content, ref.MessageID, ref.ChannelID)
	if err != nil {
		return 0, fmt.Errorf("inserting suggestion: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted id: %w", err)
	}
	return id, nil
}

// SetStatus updates the status of a suggestion. It does not enforce the
// Pending-only transition rule; that belongs to the lifecycle service.
func (s *Store) SetStatus(id int64, status model.Status) error {
	res, err := s.db.Exec(`UPDATE suggestions SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("updating status of suggestion %d: %w", id, sql.ErrNoRows)
	}
	return nil
}

// Get retrieves a suggestion by its id. Returns nil, nil when no row exists.
func (s *Store) Get(id int64) (*model.Suggestion, error) {
	row := s.db.QueryRow(`SELECT `+suggestionCols+` FROM suggestions WHERE id = ?`, id)
	return scanSuggestion(row)
}

// List retrieves suggestions ordered by id descending (most recent first).
// filter restricts to one status; "all" or the empty string return every row.
func (s *Store) List(filter string, limit, offset int) ([]*model.Suggestion, error) {
	query := `SELECT ` + suggestionCols + ` FROM suggestions`
	args := []interface{}{}
	if filter != "" && !strings.EqualFold(filter, "all") {
		query += ` WHERE lower(status) = ?`
		args = append(args, strings.ToLower(filter))
	}
	query += ` ORDER BY id DESC LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing suggestions: %w", err)
	}
	defer rows.Close()

	var suggestions []*model.Suggestion
	for rows.Next() {
		sub, err := scanSuggestion(rows)
		if err != nil {
			return nil, err
		}
		if sub != nil {
			suggestions = append(suggestions, sub)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return suggestions, nil
}

// CountAll returns the total number of suggestions.
func (s *Store) CountAll() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM suggestions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting suggestions: %w", err)
	}
	return n, nil
}

// CountByStatus returns the number of suggestions with the given status.
func (s *Store) CountByStatus(status model.Status) (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM suggestions WHERE status = ?`, string(status)).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting suggestions by status: %w", err)
	}
	return n, nil
}
