package database

import (
	"context"
	"database/sql"
	"fmt"
)

type table struct {
	name string
	ddl  string
}

var tables = []table{
	{"users", `CREATE TABLE IF NOT EXISTS users (
		user_id SERIAL PRIMARY KEY,
		username TEXT NOT NULL,
		password TEXT NOT NULL,
		email TEXT NOT NULL,
		gender TEXT,
		height DOUBLE PRECISION NOT NULL DEFAULT 0,
		weight DOUBLE PRECISION NOT NULL DEFAULT 0,
		date_of_birth TEXT,
		goal_id INT,
		routine_id INT,
		nutrition_id INT,
		professional_id INT,
		created_at TEXT,
		updated_at TEXT
	)`},
	{"professionals", `CREATE TABLE IF NOT EXISTS professionals (
		professional_id SERIAL PRIMARY KEY,
		username TEXT NOT NULL,
		password TEXT NOT NULL,
		email TEXT NOT NULL,
		profession TEXT,
		specialty TEXT,
		routine_id INT,
		nutrition_id INT,
		created_at TEXT,
		updated_at TEXT
	)`},
	{"goals", `CREATE TABLE IF NOT EXISTS goals (
		goal_id SERIAL PRIMARY KEY,
		user_id INT NOT NULL,
		professional_id INT,
		goal_type TEXT NOT NULL,
		goal_value DOUBLE PRECISION NOT NULL DEFAULT 0,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL
	)`},
	{"activities", `CREATE TABLE IF NOT EXISTS activities (
		activity_id SERIAL PRIMARY KEY,
		activity_type TEXT NOT NULL,
		activity_date TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL
	)`},
	{"routines", `CREATE TABLE IF NOT EXISTS routines (
		routine_id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		activity_ids integer[] NOT NULL DEFAULT '{}'
	)`},
	{"foods", `CREATE TABLE IF NOT EXISTS foods (
		food_id SERIAL PRIMARY KEY,
		food_name TEXT NOT NULL,
		food_brand TEXT,
		serving_size DOUBLE PRECISION NOT NULL DEFAULT 0,
		serving_unit TEXT,
		calories DOUBLE PRECISION NOT NULL DEFAULT 0,
		protein DOUBLE PRECISION NOT NULL DEFAULT 0,
		carbohydrates DOUBLE PRECISION NOT NULL DEFAULT 0,
		fat DOUBLE PRECISION NOT NULL DEFAULT 0,
		sodium DOUBLE PRECISION NOT NULL DEFAULT 0
	)`},
	{"meals", `CREATE TABLE IF NOT EXISTS meals (
		meal_id SERIAL PRIMARY KEY,
		meal_date TEXT NOT NULL,
		meal_time TEXT NOT NULL,
		meal_type TEXT NOT NULL,
		foods jsonb NOT NULL DEFAULT '[]'
	)`},
	{"nutritions", `CREATE TABLE IF NOT EXISTS nutritions (
		nutrition_id SERIAL PRIMARY KEY,
		name TEXT,
		meal_ids integer[] NOT NULL DEFAULT '{}'
	)`},
	{"clients", `CREATE TABLE IF NOT EXISTS clients (
		client_id SERIAL PRIMARY KEY,
		user_id INT NOT NULL,
		professional_id INT NOT NULL,
		UNIQUE (user_id, professional_id)
	)`},
	{"notification_jobs", `CREATE TABLE IF NOT EXISTS notification_jobs (
		job_id TEXT PRIMARY KEY,
		task TEXT NOT NULL,
		args jsonb NOT NULL DEFAULT '{}',
		status TEXT NOT NULL,
		result TEXT,
		error TEXT,
		created_at TEXT,
		updated_at TEXT
	)`},
}

// EnsureSchema creates any missing table. Existing tables are left untouched.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, t := range tables {
		if _, err := db.ExecContext(ctx, t.ddl); err != nil {
			return fmt.Errorf("create table %s: %w", t.name, err)
		}
	}
	return nil
}
