package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/parkgrid/citations-backend-go/internal/models"
	"github.com/parkgrid/citations-backend-go/internal/spatial"
)

// Raw CSV column names. The raw Latitude/Longitude columns do not hold
// degrees: they hold NAD83 California zone 5 state-plane X/Y in US survey
// feet, with Latitude carrying the easting.
const (
	colIssueDate = "Issue Date"
	colIssueTime = "Issue time"
	colLatitude  = "Latitude"
	colLongitude = "Longitude"
)

var issueDateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006",
	"01/02/2006 15:04:05 PM",
}

// Options controls extraction from the raw citation CSV.
type Options struct {
	// YearFrom/YearTo bound the issue year as a half-open interval
	// [YearFrom, YearTo).
	YearFrom int
	YearTo   int

	// SentinelLow/SentinelHigh bound the raw easting value exclusively;
	// values outside (SentinelLow, SentinelHigh) are sentinel or garbage
	// entries, not real state-plane coordinates.
	SentinelLow  float64
	SentinelHigh float64
}

// Result carries the reduced records plus row accounting.
type Result struct {
	Records []models.Citation
	Total   int
	Kept    int
	Dropped int
}

// ExtractRaw reads the raw citation CSV, drops rows with sentinel
// coordinates or out-of-range years, derives the hour bucket and day-of-week,
// and reprojects state-plane feet to geographic degrees.
func ExtractRaw(r io.Reader, opts Options) (*Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	cols, err := locateColumns(header, colIssueDate, colIssueTime, colLatitude, colLongitude)
	if err != nil {
		return nil, err
	}

	maxIdx := 0
	for _, i := range cols {
		if i > maxIdx {
			maxIdx = i
		}
	}

	res := &Result{}
	var eastings, northings []float64

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", res.Total+1, err)
		}
		res.Total++

		if len(row) <= maxIdx {
			res.Dropped++
			continue
		}

		easting, err1 := strconv.ParseFloat(strings.TrimSpace(row[cols[colLatitude]]), 64)
		northing, err2 := strconv.ParseFloat(strings.TrimSpace(row[cols[colLongitude]]), 64)
		if err1 != nil || err2 != nil {
			res.Dropped++
			continue
		}
		if easting <= opts.SentinelLow || easting >= opts.SentinelHigh {
			res.Dropped++
			continue
		}

		date, err := parseIssueDate(row[cols[colIssueDate]])
		if err != nil {
			res.Dropped++
			continue
		}
		if date.Year() < opts.YearFrom || date.Year() >= opts.YearTo {
			res.Dropped++
			continue
		}

		rawTime, err := strconv.ParseFloat(strings.TrimSpace(row[cols[colIssueTime]]), 64)
		if err != nil {
			res.Dropped++
			continue
		}

		res.Records = append(res.Records, models.Citation{
			HourBucket: HourBucket(rawTime),
			DayOfWeek:  date.Weekday().String(),
		})
		eastings = append(eastings, easting)
		northings = append(northings, northing)
		res.Kept++
	}

	proj := spatial.NewCaliforniaZone5()
	lons, lats := proj.InverseAll(eastings, northings)
	for i := range res.Records {
		res.Records[i].Longitude = lons[i]
		res.Records[i].Latitude = lats[i]
	}
	return res, nil
}

// HourBucket converts an HHMM-encoded issue time to the nearest hour. The
// raw value divided by 100 yields hours with minutes in the fraction; the
// +0.2 bias makes times on the hour boundary round upward (1230 -> 13,
// 600 -> 6, 559 -> 6).
func HourBucket(rawTime float64) int {
	return int(math.Round(rawTime/100 + 0.2))
}

func parseIssueDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range issueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable issue date %q", s)
}

func locateColumns(header []string, names ...string) (map[string]int, error) {
	cols := make(map[string]int, len(names))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}
	located := make(map[string]int, len(names))
	for _, name := range names {
		i, ok := cols[name]
		if !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
		located[name] = i
	}
	return located, nil
}
