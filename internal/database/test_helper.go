package database

import (
	"fmt"
	"testing"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"transactions",
		"categories",
		"users",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}

func CreateTestUser(t *testing.T, db *DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: "hashed_password",
		Name:         "Test User",
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestCategory(t *testing.T, db *DB, userID uuid.UUID, title string) *models.Category {
	t.Helper()

	category := &models.Category{
		Title:  title,
		Icon:   models.IconUtensils,
		Color:  models.ColorBlue,
		UserID: userID,
	}

	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}

	return category
}

func CreateTestTransaction(t *testing.T, db *DB, userID, categoryID uuid.UUID, txType string, amount float64, date time.Time) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		Type:        txType,
		Description: "Test transaction",
		Date:        date,
		Amount:      decimal.NewFromFloat(amount),
		UserID:      userID,
		CategoryID:  categoryID,
	}

	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return transaction
}
