package gorm

import (
	"database/sql"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// WeatherData is the schema of the weather_data table. Queries go through database/sql; gorm only migrates.
type WeatherData struct {
	ID          string     `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Country     string     `gorm:"type:varchar(255);not null;default:Unknown"`
	Latitude    *float64   `gorm:"type:double precision"`
	Longitude   *float64   `gorm:"type:double precision"`
	Temperature *float64   `gorm:"type:double precision"`
	WeatherCode *int       `gorm:"type:integer"`
	LastUpdated *time.Time `gorm:"type:timestamptz"`
	CreatedAt   time.Time  `gorm:"type:timestamptz;not null"`
	UpdatedAt   time.Time  `gorm:"type:timestamptz;not null"`
}

func (WeatherData) TableName() string {
	return "weather_data"
}

// Migrate creates or updates the schema over an existing connection pool.
func Migrate(db *sql.DB) error {
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to open gorm over pool: %w", err)
	}

	if err := gormDB.AutoMigrate(&WeatherData{}); err != nil {
		return fmt.Errorf("failed to migrate weather_data: %w", err)
	}

	return nil
}
