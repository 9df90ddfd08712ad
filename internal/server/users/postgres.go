package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/akarpov87/authgate/internal/common"
	"github.com/akarpov87/authgate/internal/server/models"
)

// PostgresRepository backs the credential store with PostgreSQL. Friends and
// notifications are stored as JSONB columns.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	friends, err := json.Marshal(user.Friends)
	if err != nil {
		return nil, fmt.Errorf("encoding friends: %w", err)
	}
	notifications, err := json.Marshal(user.Notifications)
	if err != nil {
		return nil, fmt.Errorf("encoding notifications: %w", err)
	}

	query :=
		`INSERT INTO users (username, name, email, birthday, friends, notifications, hashed_password)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 `

	_, err = r.db.ExecContext(ctx, query,
		user.Username, user.Name, user.Email, user.Birthday, friends, notifications, user.HashedPassword)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query :=
		`SELECT username, name, email, birthday, friends, notifications, hashed_password FROM users
		 WHERE username = $1
		 `

	user := &models.User{}
	var friends, notifications []byte
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.Username, &user.Name, &user.Email, &user.Birthday, &friends, &notifications, &user.HashedPassword)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if len(friends) > 0 {
		if err := json.Unmarshal(friends, &user.Friends); err != nil {
			return nil, fmt.Errorf("decoding friends: %w", err)
		}
	}
	if len(notifications) > 0 {
		if err := json.Unmarshal(notifications, &user.Notifications); err != nil {
			return nil, fmt.Errorf("decoding notifications: %w", err)
		}
	}

	return user, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, username string) error {
	query :=
		`DELETE FROM users
		 WHERE username = $1
		 `

	res, err := r.db.ExecContext(ctx, query, username)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
