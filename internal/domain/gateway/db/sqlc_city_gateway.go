package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"weather-dashboard/internal/domain/entity"
)

const cityColumns = `id, name, country, latitude, longitude, temperature, weather_code, last_updated, created_at, updated_at`

type SQLCCityGateway struct {
	DB *sql.DB
}

var _ CityGateway = (*SQLCCityGateway)(nil)

func NewSQLCCityGateway(db *sql.DB) *SQLCCityGateway {
	return &SQLCCityGateway{DB: db}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCity(row rowScanner) (*entity.City, error) {
	var city entity.City
	var latitude, longitude, temperature sql.NullFloat64
	var weatherCode sql.NullInt64
	var lastUpdated sql.NullTime

	err := row.Scan(&city.ID, &city.Name, &city.Country, &latitude, &longitude,
		&temperature, &weatherCode, &lastUpdated, &city.CreatedAt, &city.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if latitude.Valid {
		city.Latitude = &latitude.Float64
	}
	if longitude.Valid {
		city.Longitude = &longitude.Float64
	}
	if temperature.Valid {
		city.Temperature = &temperature.Float64
	}
	if weatherCode.Valid {
		code := int(weatherCode.Int64)
		city.WeatherCode = &code
	}
	if lastUpdated.Valid {
		city.LastUpdated = &lastUpdated.Time
	}

	return &city, nil
}

func (gateway *SQLCCityGateway) queryCities(ctx context.Context, query string, args ...any) ([]entity.City, error) {
	rows, err := gateway.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cities := make([]entity.City, 0)
	for rows.Next() {
		city, err := scanCity(rows)
		if err != nil {
			return nil, err
		}
		cities = append(cities, *city)
	}

	return cities, rows.Err()
}

// FindAll retrieves cities ordered by name, 0-based page
func (gateway *SQLCCityGateway) FindAll(ctx context.Context, page int, size int) ([]entity.City, error) {
	if page < 0 {
		page = 0
	}

	return gateway.queryCities(ctx, `
		SELECT `+cityColumns+`
		FROM weather_data
		ORDER BY name ASC
		OFFSET $1 LIMIT $2`, page*size, size)
}

// FindAllWithKeysetPagination retrieves cities using key-set pagination by ID
func (gateway *SQLCCityGateway) FindAllWithKeysetPagination(ctx context.Context, lastID string, size int) ([]entity.City, error) {
	if lastID == "" {
		return gateway.queryCities(ctx, `
			SELECT `+cityColumns+`
			FROM weather_data
			ORDER BY id ASC
			LIMIT $1`, size)
	}

	return gateway.queryCities(ctx, `
		SELECT `+cityColumns+`
		FROM weather_data
		WHERE id > $1
		ORDER BY id ASC
		LIMIT $2`, lastID, size)
}

// CountAll returns total count of cities
func (gateway *SQLCCityGateway) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := gateway.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM weather_data").Scan(&count)
	return count, err
}

// FindByName finds a city by its exact name
func (gateway *SQLCCityGateway) FindByName(ctx context.Context, name string) (*entity.City, error) {
	city, err := scanCity(gateway.DB.QueryRowContext(ctx, `
		SELECT `+cityColumns+`
		FROM weather_data
		WHERE name = $1`, name))

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return city, nil
}

// Create inserts a city that has never been synced
func (gateway *SQLCCityGateway) Create(ctx context.Context, city entity.City) (*entity.City, error) {
	city.ID = uuid.New().String()
	now := time.Now().UTC()
	city.CreatedAt = now
	city.UpdatedAt = now
	city.Temperature = nil
	city.WeatherCode = nil
	city.LastUpdated = nil

	_, err := gateway.DB.ExecContext(ctx, `
		INSERT INTO weather_data (id, name, country, latitude, longitude, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		city.ID, city.Name, city.Country, city.Latitude, city.Longitude, city.CreatedAt, city.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert city %s: %w", city.Name, err)
	}

	return &city, nil
}

// UpdateLocation refreshes the country and coordinates of a city
func (gateway *SQLCCityGateway) UpdateLocation(ctx context.Context, id string, country string, latitude float64, longitude float64) (*entity.City, error) {
	city, err := scanCity(gateway.DB.QueryRowContext(ctx, `
		UPDATE weather_data
		SET country = $1, latitude = $2, longitude = $3, updated_at = $4
		WHERE id = $5
		RETURNING `+cityColumns,
		country, latitude, longitude, time.Now().UTC(), id))

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update city %s: %w", id, err)
	}

	return city, nil
}

// UpdateCurrentWeather writes the reading of a city in one statement
func (gateway *SQLCCityGateway) UpdateCurrentWeather(ctx context.Context, name string, temperature float64, weatherCode int, at time.Time) (bool, error) {
	result, err := gateway.DB.ExecContext(ctx, `
		UPDATE weather_data
		SET temperature = $1, weather_code = $2, last_updated = $3, updated_at = $3
		WHERE name = $4`,
		temperature, weatherCode, at, name)
	if err != nil {
		return false, fmt.Errorf("failed to update weather of %s: %w", name, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}
