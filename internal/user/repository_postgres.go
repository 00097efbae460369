package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sanaresoma/sanaresoma-backend/internal/database"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	userColumns = `user_id, username, password, email, gender, height, weight, date_of_birth, goal_id, routine_id, nutrition_id, professional_id, created_at, updated_at`

	listUsersQuery = `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY user_id
	`
	getUserByIDQuery = `
		SELECT ` + userColumns + `
		FROM users
		WHERE user_id = $1
	`
	insertUserQuery = `
		INSERT INTO users (username, password, email, gender, height, weight, date_of_birth, goal_id, routine_id, nutrition_id, professional_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING user_id
	`
	updateUserQuery = `
		UPDATE users
		SET username = $1,
			password = $2,
			email = $3,
			gender = $4,
			height = $5,
			weight = $6,
			date_of_birth = $7,
			goal_id = $8,
			routine_id = $9,
			nutrition_id = $10,
			professional_id = $11,
			updated_at = $12
		WHERE user_id = $13
	`
	deleteUserQuery = `DELETE FROM users WHERE user_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx, listUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, getUserByIDQuery, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("get user %d: %w", id, err)
	}
	return u, nil
}

func (r *PostgresRepository) Create(ctx context.Context, u User) (User, error) {
	var id int
	err := r.db.QueryRowContext(ctx,
		insertUserQuery,
		u.Username,
		u.Password,
		u.Email,
		u.Gender,
		u.Height,
		u.Weight,
		database.NullString(u.DateOfBirth),
		database.NullInt(u.GoalID),
		database.NullInt(u.RoutineID),
		database.NullInt(u.NutritionID),
		database.NullInt(u.ProfessionalID),
		u.CreatedAt,
		u.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return User{}, fmt.Errorf("insert user: %w", err)
	}

	u.ID = id
	return u, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int, u User) (User, error) {
	result, err := r.db.ExecContext(ctx,
		updateUserQuery,
		u.Username,
		u.Password,
		u.Email,
		u.Gender,
		u.Height,
		u.Weight,
		database.NullString(u.DateOfBirth),
		database.NullInt(u.GoalID),
		database.NullInt(u.RoutineID),
		database.NullInt(u.NutritionID),
		database.NullInt(u.ProfessionalID),
		u.UpdatedAt,
		id,
	)
	if err != nil {
		return User{}, fmt.Errorf("update user %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return User{}, err
	}
	if affected == 0 {
		return User{}, ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, deleteUserQuery, id)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanUser(scanner rowScanner) (User, error) {
	u := User{}
	var (
		gender      sql.NullString
		dob         sql.NullString
		goalID      sql.NullInt64
		routineID   sql.NullInt64
		nutritionID sql.NullInt64
		proID       sql.NullInt64
		createdAt   sql.NullString
		updatedAt   sql.NullString
	)

	if err := scanner.Scan(
		&u.ID,
		&u.Username,
		&u.Password,
		&u.Email,
		&gender,
		&u.Height,
		&u.Weight,
		&dob,
		&goalID,
		&routineID,
		&nutritionID,
		&proID,
		&createdAt,
		&updatedAt,
	); err != nil {
		return User{}, err
	}

	u.Gender = gender.String
	u.DateOfBirth = database.StringPtr(dob)
	u.GoalID = database.IntPtr(goalID)
	u.RoutineID = database.IntPtr(routineID)
	u.NutritionID = database.IntPtr(nutritionID)
	u.ProfessionalID = database.IntPtr(proID)
	u.CreatedAt = createdAt.String
	u.UpdatedAt = updatedAt.String
	return u, nil
}
