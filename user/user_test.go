package user_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"campusconnect/user"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	a := user.NewAccessor(db)

	const name = "Samarth"
	const email = "samarth@campus.edu"

	insertQuery := `INSERT INTO users (id, name, email, role, roll_no) VALUES ($1, $2, $3, $4, $5)`
	mock.ExpectExec(regexp.QuoteMeta(insertQuery)).
		WithArgs(sqlmock.AnyArg(), name, email, user.RoleStudent, "21BCE001").
		WillReturnResult(sqlmock.NewResult(1, 1))

	t.Run("create user defaults to student role", func(t *testing.T) {
		createdUser, err := a.CreateUser(context.Background(), user.User{
			Name:   name,
			Email:  email,
			RollNo: "21BCE001",
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, createdUser.ID)
		assert.Equal(t, name, createdUser.Name)
		assert.Equal(t, email, createdUser.Email)
		assert.Equal(t, user.RoleStudent, createdUser.Role)

		require.NoError(t, mock.ExpectationsWereMet())

		t.Run("get user", func(t *testing.T) {
			selectQuery := `SELECT id, name, email, role, roll_no FROM users WHERE id = $1`
			rows := sqlmock.NewRows([]string{"id", "name", "email", "role", "roll_no"}).
				AddRow(createdUser.ID, name, email, user.RoleStudent, "21BCE001")

			mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
				WithArgs(createdUser.ID).
				WillReturnRows(rows)

			u, err := a.GetUser(context.Background(), createdUser.ID)
			require.NoError(t, err)
			assert.Equal(t, createdUser, u)

			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("get user - no rows", func(t *testing.T) {
			selectQuery := `SELECT id, name, email, role, roll_no FROM users WHERE id = $1`
			mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
				WithArgs(sqlmock.AnyArg()).
				WillReturnError(sql.ErrNoRows)

			_, err := a.GetUser(context.Background(), uuid.New())
			require.ErrorIs(t, err, user.ErrNotFound)
		})
	})

	t.Run("create user with unknown role", func(t *testing.T) {
		_, err := a.CreateUser(context.Background(), user.User{
			Name:  name,
			Email: email,
			Role:  "janitor",
		})
		require.Error(t, err)
	})
}
