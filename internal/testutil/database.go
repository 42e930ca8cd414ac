package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the local test database. It expects a MySQL instance on
// localhost:3306 with a database named 'parcelo_test'; tests are skipped
// when it is not reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/parcelo_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.Ping()
	if err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB empties the test tables and closes the connection.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"Orders", "Deliverymen", "Recipients", "Files", "Users"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the schema used by the repository tests.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createFilesTable := `
	CREATE TABLE IF NOT EXISTS Files (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		path VARCHAR(255) NOT NULL,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	createDeliverymenTable := `
	CREATE TABLE IF NOT EXISTS Deliverymen (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(150) NOT NULL,
		avatarId INT UNSIGNED,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_email (email)
	)`

	createRecipientsTable := `
	CREATE TABLE IF NOT EXISTS Recipients (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		street VARCHAR(255) NOT NULL,
		number VARCHAR(20) NOT NULL,
		complement VARCHAR(255),
		state VARCHAR(50) NOT NULL,
		city VARCHAR(100) NOT NULL,
		zipCode VARCHAR(20) NOT NULL,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

	createOrdersTable := `
	CREATE TABLE IF NOT EXISTS Orders (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		recipientId INT UNSIGNED NOT NULL,
		deliverymanId INT UNSIGNED NOT NULL,
		product VARCHAR(255) NOT NULL,
		canceledAt DATETIME,
		startDate DATETIME,
		endDate DATETIME,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_recipient (recipientId),
		INDEX idx_deliveryman (deliverymanId),
		INDEX idx_canceled (canceledAt)
	)`

	createUsersTable := `
	CREATE TABLE IF NOT EXISTS Users (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(150) NOT NULL UNIQUE,
		passwordHash VARCHAR(100) NOT NULL,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"Files", createFilesTable},
		{"Deliverymen", createDeliverymenTable},
		{"Recipients", createRecipientsTable},
		{"Orders", createOrdersTable},
		{"Users", createUsersTable},
	}

	for _, tbl := range tables {
		_, err := db.Exec(tbl.query)
		if err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
