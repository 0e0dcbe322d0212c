package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aburaya/english-trainer-bot/internal/domain/entities"
)

// AttemptRepository stores graded attempts in PostgreSQL. The attempts
// table is append-only: records are never updated or deleted.
type AttemptRepository struct {
	db *pgxpool.Pool
}

func NewAttemptRepository(db *pgxpool.Pool) *AttemptRepository {
	return &AttemptRepository{db: db}
}

// Append inserts one graded attempt.
func (r *AttemptRepository) Append(ctx context.Context, attempt *entities.Attempt) error {
	query := `
		INSERT INTO attempts (user_id, expected_text, given_text, score, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(
		ctx, query,
		attempt.UserID,
		attempt.ExpectedText,
		attempt.GivenText,
		attempt.Score,
		attempt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append attempt: %w", err)
	}

	return nil
}

// ListSince returns the user's attempts with created_at >= since, in
// submission order.
func (r *AttemptRepository) ListSince(ctx context.Context, userID int64, since time.Time) ([]*entities.Attempt, error) {
	query := `
		SELECT user_id, expected_text, given_text, score, created_at
		FROM attempts
		WHERE user_id = $1 AND created_at >= $2
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	defer rows.Close()

	var attempts []*entities.Attempt
	for rows.Next() {
		var a entities.Attempt
		err = rows.Scan(
			&a.UserID,
			&a.ExpectedText,
			&a.GivenText,
			&a.Score,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("list attempts: %w", err)
		}
		attempts = append(attempts, &a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}

	return attempts, nil
}
