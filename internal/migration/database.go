package migration

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strings"

	"github.com/go-sql-driver/mysql"

	"exrun/internal/config"
)

// DatabaseManager manages the run history database
type DatabaseManager struct {
	config *config.Config
}

// NewDatabaseManager creates a new DatabaseManager
func NewDatabaseManager(cfg *config.Config) *DatabaseManager {
	return &DatabaseManager{config: cfg}
}

// DSN builds the connection string. withDB selects the history database;
// without it the DSN points at the server only.
func (dm *DatabaseManager) DSN(withDB bool) (string, error) {
	db := dm.config.Database

	var mc *mysql.Config
	if db.DSN != "" {
		parsed, err := mysql.ParseDSN(db.DSN)
		if err != nil {
			return "", fmt.Errorf("parse EXRUN_DB_DSN: %w", err)
		}
		mc = parsed
		if mc.DBName == "" {
			mc.DBName = dm.config.GetDatabaseName()
		}
	} else {
		mc = mysql.NewConfig()
		mc.User = db.User
		mc.Passwd = db.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(db.Host, db.Port)
		mc.DBName = dm.config.GetDatabaseName()
	}

	if !withDB {
		mc.DBName = ""
	}
	mc.ParseTime = true
	return mc.FormatDSN(), nil
}

// Open connects to the history database and checks the connection
func (dm *DatabaseManager) Open(ctx context.Context) (*sql.DB, error) {
	return dm.open(ctx, true)
}

func (dm *DatabaseManager) open(ctx context.Context, withDB bool) (*sql.DB, error) {
	dsn, err := dm.DSN(withDB)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database server: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database server: %w", err)
	}
	return db, nil
}

// CheckAndCreateDatabase creates the history database if it does not exist.
// It reports whether the database was created.
func (dm *DatabaseManager) CheckAndCreateDatabase(ctx context.Context) (bool, error) {
	// Connect to MySQL server (without specifying database)
	db, err := dm.open(ctx, false)
	if err != nil {
		return false, err
	}
	defer db.Close()

	dbName := dm.config.GetDatabaseName()
	exists, err := dm.databaseExists(ctx, db, dbName)
	if err != nil {
		return false, fmt.Errorf("failed to check database %s: %w", dbName, err)
	}
	if exists {
		return false, nil
	}

	if err := dm.createDatabase(ctx, db, dbName); err != nil {
		return false, fmt.Errorf("failed to create database %s: %w", dbName, err)
	}
	return true, nil
}

// databaseExists checks if a database exists
func (dm *DatabaseManager) databaseExists(ctx context.Context, db *sql.DB, dbName string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT SCHEMA_NAME FROM INFORMATION_SCHEMA.SCHEMATA WHERE SCHEMA_NAME = ?)"
	err := db.QueryRowContext(ctx, query, dbName).Scan(&exists)
	return exists, err
}

// createDatabase creates a new database
func (dm *DatabaseManager) createDatabase(ctx context.Context, db *sql.DB, dbName string) error {
	// Sanitize database name to prevent SQL injection
	if !isValidDatabaseName(dbName) {
		return fmt.Errorf("invalid database name: %s", dbName)
	}

	query := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", dbName)
	_, err := db.ExecContext(ctx, query)
	return err
}

// isValidDatabaseName allows only letters, digits, underscore and dash, up to 64 characters
func isValidDatabaseName(name string) bool {
	if len(name) == 0 || len(name) > 64 {
		return false
	}
	return strings.IndexFunc(name, func(r rune) bool {
		return !(r == '_' || r == '-' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z')
	}) < 0
}
