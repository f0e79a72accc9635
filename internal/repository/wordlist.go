package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/ClarkyAU/passforge/internal/model"
)

var ErrWordlistNotFound = errors.New("wordlist not found")

// WordlistRepository handles named wordlist persistence operations.
type WordlistRepository struct {
	db *sql.DB
}

// NewWordlistRepository creates a new WordlistRepository.
func NewWordlistRepository(db *sql.DB) *WordlistRepository {
	return &WordlistRepository{db: db}
}

// upsertQuery replaces a list wholesale when the name already exists; a PUT
// of an existing name is an update, not a conflict.
const upsertQuery = `
	INSERT INTO wordlists (name, words, word_count, source)
	VALUES (?, ?, ?, ?)
	ON DUPLICATE KEY UPDATE
		words      = VALUES(words),
		word_count = VALUES(word_count),
		source     = VALUES(source),
		updated_at = CURRENT_TIMESTAMP`

// Save inserts or replaces a named wordlist.
func (r *WordlistRepository) Save(ctx context.Context, list *model.Wordlist) error {
	_, err := r.db.ExecContext(ctx, upsertQuery,
		list.Name,
		joinWords(list.Words),
		len(list.Words),
		list.Source,
	)
	return err
}

// GetByName retrieves a wordlist by name.
func (r *WordlistRepository) GetByName(ctx context.Context, name string) (*model.Wordlist, error) {
	query := `SELECT id, name, words, source, created_at, updated_at
		FROM wordlists WHERE name = ?`

	list := &model.Wordlist{}
	var words string
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&list.ID, &list.Name, &words, &list.Source, &list.CreatedAt, &list.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWordlistNotFound
		}
		return nil, err
	}

	list.Words = splitWords(words)
	return list, nil
}

// List retrieves metadata for all stored wordlists, ordered by name. The
// word columns stay in the database; listings never carry full lists.
func (r *WordlistRepository) List(ctx context.Context) ([]model.WordlistInfo, error) {
	query := `SELECT name, word_count, source, updated_at FROM wordlists ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lists []model.WordlistInfo
	for rows.Next() {
		var info model.WordlistInfo
		if err := rows.Scan(&info.Name, &info.WordCount, &info.Source, &info.UpdatedAt); err != nil {
			return nil, err
		}
		lists = append(lists, info)
	}

	return lists, rows.Err()
}

// Delete removes a named wordlist.
func (r *WordlistRepository) Delete(ctx context.Context, name string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM wordlists WHERE name = ?`, name)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrWordlistNotFound
	}

	return nil
}

// Words are stored newline-joined. Lists are validated down to plain a-z
// words before they reach the store, so the join is unambiguous.
func joinWords(words []string) string {
	return strings.Join(words, "\n")
}

func splitWords(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
