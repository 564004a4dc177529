package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/parkgrid/citations-backend-go/internal/models"
)

var reducedHeader = []string{"Issue time", "Latitude", "Longitude", "DoW"}

// WriteReduced writes reduced records as CSV with a header row and no index
// column: hour bucket, latitude, longitude, day-of-week.
func WriteReduced(w io.Writer, records []models.Citation) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reducedHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			strconv.Itoa(rec.HourBucket),
			strconv.FormatFloat(rec.Latitude, 'f', -1, 64),
			strconv.FormatFloat(rec.Longitude, 'f', -1, 64),
			rec.DayOfWeek,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadReduced loads reduced records from CSV produced by WriteReduced.
func ReadReduced(r io.Reader) ([]models.Citation, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	cols, err := locateColumns(header, reducedHeader...)
	if err != nil {
		return nil, err
	}

	var records []models.Citation
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", line, err)
		}
		line++

		bucket, err := strconv.ParseFloat(row[cols["Issue time"]], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad hour bucket: %w", line, err)
		}
		lat, err := strconv.ParseFloat(row[cols["Latitude"]], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad latitude: %w", line, err)
		}
		lon, err := strconv.ParseFloat(row[cols["Longitude"]], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad longitude: %w", line, err)
		}

		records = append(records, models.Citation{
			HourBucket: int(bucket),
			Latitude:   lat,
			Longitude:  lon,
			DayOfWeek:  row[cols["DoW"]],
		})
	}
	return records, nil
}
