package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

func (a *Accessor) CreateUser(ctx context.Context, user User) (User, error) {
	if err := user.Validate(); err != nil {
		return User{}, err
	}

	id := uuid.New()
	if user.Role == "" {
		user.Role = RoleStudent
	}

	query := `INSERT INTO users (id, name, email, role, roll_no) VALUES ($1, $2, $3, $4, $5)`
	if _, err := a.db.ExecContext(ctx, query, id, user.Name, user.Email, user.Role, user.RollNo); err != nil {
		return User{}, err
	}

	return User{
		ID:     id,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		RollNo: user.RollNo,
	}, nil
}

func (a *Accessor) GetUsers(ctx context.Context) ([]User, error) {
	var users []User

	query := `SELECT id, name, email, role, roll_no FROM users`
	rows, err := a.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var user User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.RollNo); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (a *Accessor) GetUser(ctx context.Context, id uuid.UUID) (User, error) {
	var user User

	query := `SELECT id, name, email, role, roll_no FROM users WHERE id = $1`
	row := a.db.QueryRowContext(ctx, query, id)
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.RollNo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}

	return user, nil
}

// UpdateUser applies a partial profile update. Empty fields are left unchanged.
func (a *Accessor) UpdateUser(ctx context.Context, id uuid.UUID, update User) (User, error) {
	current, err := a.GetUser(ctx, id)
	if err != nil {
		return User{}, err
	}

	if update.Name != "" {
		current.Name = update.Name
	}
	if update.Email != "" {
		current.Email = update.Email
	}
	if update.Role != "" {
		current.Role = update.Role
	}
	if update.RollNo != "" {
		current.RollNo = update.RollNo
	}
	if err := current.Validate(); err != nil {
		return User{}, err
	}

	query := `UPDATE users SET name = $1, email = $2, role = $3, roll_no = $4 WHERE id = $5`
	if _, err := a.db.ExecContext(ctx, query, current.Name, current.Email, current.Role, current.RollNo, id); err != nil {
		return User{}, err
	}

	return current, nil
}
