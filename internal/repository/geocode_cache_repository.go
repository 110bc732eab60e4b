package repository

import (
	"database/sql"
	"fmt"

	"github.com/mnakagawa/eatmap-backend-go/internal/models"
)

// GeocodeCacheRepository handles database operations for the persistent
// address-to-coordinate cache
type GeocodeCacheRepository struct {
	db *sql.DB
}

// NewGeocodeCacheRepository creates a new geocode cache repository
func NewGeocodeCacheRepository(db *sql.DB) *GeocodeCacheRepository {
	return &GeocodeCacheRepository{db: db}
}

// Get retrieves a cached coordinate by address. Returns (nil, nil) on a
// cache miss.
func (r *GeocodeCacheRepository) Get(address string) (*models.GeoPoint, error) {
	query := `
		SELECT lat, lng
		FROM geocode_cache
		WHERE address = ?
	`

	p := &models.GeoPoint{}
	err := r.db.QueryRow(query, address).Scan(&p.Lat, &p.Lng)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached geocode: %w", err)
	}

	return p, nil
}

// Put stores or refreshes a resolved address
func (r *GeocodeCacheRepository) Put(address string, point models.GeoPoint) error {
	query := `
		INSERT INTO geocode_cache (address, lat, lng)
		VALUES (?, ?, ?)
		ON CONFLICT(address) DO UPDATE SET
			lat = excluded.lat,
			lng = excluded.lng,
			updated_at = CURRENT_TIMESTAMP
	`

	if _, err := r.db.Exec(query, address, point.Lat, point.Lng); err != nil {
		return fmt.Errorf("failed to store cached geocode: %w", err)
	}
	return nil
}

// Count returns the number of cached addresses
func (r *GeocodeCacheRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM geocode_cache").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count cached geocodes: %w", err)
	}
	return count, nil
}
