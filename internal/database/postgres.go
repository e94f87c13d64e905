package database

import (
	"fmt"
	"log"
	"path/filepath"
	"runtime"
	"time"

	"github.com/minseokang/walkmate/internal/config"
	"github.com/minseokang/walkmate/internal/database/migrations"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	TelegramID int64 `gorm:"uniqueIndex"`
	Username   string
	FirstName  string
	LastName   string
	Email      string // optional contact address, feeds display-name derivation
}

// Dog keeps age and weight as the raw text the owner entered; the classifier
// coerces them on read.
type Dog struct {
	gorm.Model
	OwnerUID    string `gorm:"index"`
	Name        string
	Breed       string
	Gender      string
	Age         string
	Weight      string
	PhotoFileID string
}

// Activity is a private history record under the owner's collection.
// Timestamp is assigned by the database, not the client clock, so
// leaderboard ordering stays consistent across devices with skewed clocks.
type Activity struct {
	gorm.Model
	OwnerUID    string `gorm:"index"`
	Username    string
	DogName     string
	DogAge      string
	WalkedTime  float64 // minutes, two-decimal rounding
	Steps       int
	PhotoFileID string
	Timestamp   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// LeaderboardEntry is the public mirror of an Activity, written as a second
// independent operation into the shared users_activity collection.
type LeaderboardEntry struct {
	gorm.Model
	OwnerUID    string `gorm:"index"`
	Username    string
	DogName     string
	DogAge      string
	WalkedTime  float64
	Steps       int
	PhotoFileID string
	Timestamp   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index"`
}

func (LeaderboardEntry) TableName() string {
	return "users_activity"
}

func NewPostgresDB(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get the directory of the current file
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return nil, fmt.Errorf("failed to get current file path")
	}
	migrationsDir := filepath.Join(filepath.Dir(filename), "migrations")

	// Load and run migrations
	if err := migrations.LoadSQLMigrations(db, migrationsDir); err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Auto-migrate the schema for models that don't have explicit migrations
	if err := db.AutoMigrate(&User{}, &Dog{}, &Activity{}, &LeaderboardEntry{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	log.Println("Database connection established and migrations completed")
	return db, nil
}
