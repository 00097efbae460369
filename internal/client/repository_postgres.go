package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	listClientsQuery = `
		SELECT client_id, user_id, professional_id
		FROM clients
		ORDER BY client_id
	`
	listClientsByProfessionalQuery = `
		SELECT client_id, user_id, professional_id
		FROM clients
		WHERE professional_id = $1
		ORDER BY client_id
	`
	getClientByIDQuery = `
		SELECT client_id, user_id, professional_id
		FROM clients
		WHERE client_id = $1
	`
	insertClientQuery = `
		INSERT INTO clients (user_id, professional_id)
		VALUES ($1, $2)
		RETURNING client_id
	`
	updateClientQuery = `
		UPDATE clients
		SET user_id = $1,
			professional_id = $2
		WHERE client_id = $3
	`
	deleteClientQuery = `DELETE FROM clients WHERE client_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Client, error) {
	return r.query(ctx, listClientsQuery)
}

func (r *PostgresRepository) ListByProfessional(ctx context.Context, professionalID int) ([]Client, error) {
	return r.query(ctx, listClientsByProfessionalQuery, professionalID)
}

func (r *PostgresRepository) query(ctx context.Context, q string, args ...any) ([]Client, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	out := make([]Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (Client, error) {
	c, err := scanClient(r.db.QueryRowContext(ctx, getClientByIDQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Client{}, ErrNotFound
	}
	if err != nil {
		return Client{}, fmt.Errorf("get client %d: %w", id, err)
	}
	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, c Client) (Client, error) {
	if err := r.db.QueryRowContext(ctx, insertClientQuery, c.UserID, c.ProfessionalID).Scan(&c.ID); err != nil {
		return Client{}, fmt.Errorf("insert client: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int, c Client) (Client, error) {
	result, err := r.db.ExecContext(ctx, updateClientQuery, c.UserID, c.ProfessionalID, id)
	if err != nil {
		return Client{}, fmt.Errorf("update client %d: %w", id, err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return Client{}, err
	} else if n == 0 {
		return Client{}, ErrNotFound
	}
	c.ID = id
	return c, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, deleteClientQuery, id)
	if err != nil {
		return fmt.Errorf("delete client %d: %w", id, err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanClient(scanner rowScanner) (Client, error) {
	var c Client
	if err := scanner.Scan(&c.ID, &c.UserID, &c.ProfessionalID); err != nil {
		return Client{}, err
	}
	return c, nil
}
