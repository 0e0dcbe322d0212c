package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aburaya/english-trainer-bot/internal/domain/entities"
)

// UserRepository provides access to user data in the database.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository with the provided database pool.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// SaveUser inserts a new user into the database.
// It sets IsActive and CreatedAt fields from the database.
func (r *UserRepository) SaveUser(ctx context.Context, user *entities.User) error {
	query := `
    INSERT INTO users (id, chat_id)
    VALUES ($1, $2)
    RETURNING is_active, created_at
    `
	err := r.db.QueryRow(ctx, query, user.ID, user.ChatID).Scan(&user.IsActive, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}

// UserExists checks if a user with the given ID exists in the database.
func (r *UserRepository) UserExists(ctx context.Context, userID int64) (bool, error) {
	query := "SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)"

	var exists bool
	err := r.db.QueryRow(ctx, query, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check user existence: %w", err)
	}

	return exists, nil
}

// GetIdleChatIDs returns chat IDs of active users with no attempt
// recorded after the given time. Used by the practice reminder.
func (r *UserRepository) GetIdleChatIDs(ctx context.Context, since time.Time) ([]int64, error) {
	query := `
		SELECT u.chat_id
		FROM users u
		WHERE u.is_active
		  AND NOT EXISTS (
			SELECT 1 FROM attempts a
			WHERE a.user_id = u.id AND a.created_at >= $1
		  )
	`

	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("get idle chat ids: %w", err)
	}
	defer rows.Close()

	var chatIDs []int64
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("get idle chat ids: %w", err)
		}
		chatIDs = append(chatIDs, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("get idle chat ids: %w", err)
	}

	return chatIDs, nil
}
