package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/parkgrid/citations-backend-go/internal/database"
	"github.com/parkgrid/citations-backend-go/internal/models"
)

// CitationRepository handles database operations for reduced citations.
type CitationRepository struct {
	db *sql.DB
}

// NewCitationRepository creates a new citation repository.
func NewCitationRepository(db *sql.DB) *CitationRepository {
	return &CitationRepository{db: db}
}

// ReplaceAll atomically replaces the citation table contents with the given
// records.
func (r *CitationRepository) ReplaceAll(records []models.Citation) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM citations"); err != nil {
			return fmt.Errorf("failed to clear citations: %w", err)
		}

		stmt, err := tx.Prepare(`
			INSERT INTO citations (hour_bucket, latitude, longitude, day_of_week)
			VALUES (?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, rec := range records {
			if _, err := stmt.Exec(rec.HourBucket, rec.Latitude, rec.Longitude, rec.DayOfWeek); err != nil {
				return fmt.Errorf("failed to insert citation: %w", err)
			}
		}
		return nil
	})
}

// List returns a page of citations matching the filter, with the unpaginated
// total.
func (r *CitationRepository) List(filter models.CitationFilter) ([]models.Citation, int64, error) {
	where, args := filterClause(filter)

	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM citations"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count citations: %w", err)
	}

	query := "SELECT id, hour_bucket, latitude, longitude, day_of_week FROM citations" + where +
		" ORDER BY id LIMIT ? OFFSET ?"
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list citations: %w", err)
	}
	defer rows.Close()

	var citations []models.Citation
	for rows.Next() {
		var c models.Citation
		if err := rows.Scan(&c.ID, &c.HourBucket, &c.Latitude, &c.Longitude, &c.DayOfWeek); err != nil {
			return nil, 0, fmt.Errorf("failed to scan citation: %w", err)
		}
		citations = append(citations, c)
	}
	return citations, total, rows.Err()
}

// Coordinates returns the (lon, lat) slices of all citations matching the
// filter, in insertion order. This is the input to histogram construction.
func (r *CitationRepository) Coordinates(filter models.CitationFilter) (lons, lats []float64, err error) {
	where, args := filterClause(filter)
	rows, err := r.db.Query("SELECT longitude, latitude FROM citations"+where, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query coordinates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var lon, lat float64
		if err := rows.Scan(&lon, &lat); err != nil {
			return nil, nil, fmt.Errorf("failed to scan coordinates: %w", err)
		}
		lons = append(lons, lon)
		lats = append(lats, lat)
	}
	return lons, lats, rows.Err()
}

// Summary aggregates total, per-day-of-week, and per-hour-bucket counts.
func (r *CitationRepository) Summary() (*models.SummaryResponse, error) {
	s := &models.SummaryResponse{
		ByDay:  make(map[string]int64),
		ByHour: make(map[int]int64),
	}

	if err := r.db.QueryRow("SELECT COUNT(*) FROM citations").Scan(&s.Total); err != nil {
		return nil, fmt.Errorf("failed to count citations: %w", err)
	}

	rows, err := r.db.Query("SELECT day_of_week, COUNT(*) FROM citations GROUP BY day_of_week")
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate by day: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var day string
		var n int64
		if err := rows.Scan(&day, &n); err != nil {
			return nil, fmt.Errorf("failed to scan day aggregate: %w", err)
		}
		s.ByDay[day] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	hourRows, err := r.db.Query("SELECT hour_bucket, COUNT(*) FROM citations GROUP BY hour_bucket")
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate by hour: %w", err)
	}
	defer hourRows.Close()
	for hourRows.Next() {
		var hour int
		var n int64
		if err := hourRows.Scan(&hour, &n); err != nil {
			return nil, fmt.Errorf("failed to scan hour aggregate: %w", err)
		}
		s.ByHour[hour] = n
	}
	return s, hourRows.Err()
}

// filterClause assembles the WHERE clause for the categorical filters.
func filterClause(filter models.CitationFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if days := filter.Day.Days(); days != nil {
		placeholders := strings.Repeat("?, ", len(days)-1) + "?"
		conds = append(conds, "day_of_week IN ("+placeholders+")")
		for _, d := range days {
			args = append(args, d)
		}
	}
	if lo, hi, ok := filter.Time.HourRange(); ok {
		conds = append(conds, "hour_bucket >= ? AND hour_bucket < ?")
		args = append(args, lo, hi)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
