package db

import (
	"context"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/sbilibin2017/animal-shelter/internal/logger"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// Open connects to the database, applies pool limits and pings it.
// SQLite is limited to a single connection so in-memory databases are shared
// by every request.
func Open(ctx context.Context, driver, dsn string, maxOpenConns, maxIdleConns int) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}

	switch driver {
	case DriverSQLite:
		db.SetMaxOpenConns(1)
		if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys=ON;`); err != nil {
			db.Close()
			return nil, err
		}
	default:
		db.SetMaxOpenConns(maxOpenConns)
		db.SetMaxIdleConns(maxIdleConns)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	return db, nil
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS species (
		species_id BIGSERIAL PRIMARY KEY,
		species_name VARCHAR(100) NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS pets (
		pet_id BIGSERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		species_id BIGINT NOT NULL,
		breed_name VARCHAR(100) NOT NULL,
		age INTEGER NOT NULL,
		color VARCHAR(50) NOT NULL,
		gender VARCHAR(20) NOT NULL,
		adopted BOOLEAN NOT NULL DEFAULT FALSE,
		date_arrived DATE NOT NULL,
		date_adopted DATE
	);`,
	`CREATE TABLE IF NOT EXISTS adoptions (
		adoption_id BIGSERIAL PRIMARY KEY,
		pet_id BIGINT NOT NULL,
		first_name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NOT NULL,
		address VARCHAR(255),
		email VARCHAR(255),
		phone VARCHAR(50),
		adoption_date DATE NOT NULL,
		date_returned DATE
	);`,
	`CREATE TABLE IF NOT EXISTS medical_records (
		treatment_id BIGSERIAL PRIMARY KEY,
		pet_id BIGINT NOT NULL,
		treatment_date DATE NOT NULL,
		treatment_details TEXT NOT NULL,
		veterinarian VARCHAR(100) NOT NULL
	);`,
}

// Dates are TEXT in SQLite so the driver hands them back as plain strings.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS species (
		species_id INTEGER PRIMARY KEY AUTOINCREMENT,
		species_name TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS pets (
		pet_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		species_id INTEGER NOT NULL,
		breed_name TEXT NOT NULL,
		age INTEGER NOT NULL,
		color TEXT NOT NULL,
		gender TEXT NOT NULL,
		adopted INTEGER NOT NULL DEFAULT 0,
		date_arrived TEXT NOT NULL,
		date_adopted TEXT
	);`,
	`CREATE TABLE IF NOT EXISTS adoptions (
		adoption_id INTEGER PRIMARY KEY AUTOINCREMENT,
		pet_id INTEGER NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		address TEXT,
		email TEXT,
		phone TEXT,
		adoption_date TEXT NOT NULL,
		date_returned TEXT
	);`,
	`CREATE TABLE IF NOT EXISTS medical_records (
		treatment_id INTEGER PRIMARY KEY AUTOINCREMENT,
		pet_id INTEGER NOT NULL,
		treatment_date TEXT NOT NULL,
		treatment_details TEXT NOT NULL,
		veterinarian TEXT NOT NULL
	);`,
}

// Migrate creates the shelter tables if they do not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	stmts := postgresSchema
	if db.DriverName() == DriverSQLite {
		stmts = sqliteSchema
	}

	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			logger.Log.Errorw("migration failed", "driver", db.DriverName(), "error", err)
			return err
		}
	}
	logger.Log.Infow("migrations applied", "driver", db.DriverName(), "tables", len(stmts))
	return nil
}
