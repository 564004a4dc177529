package ingest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/parkgrid/citations-backend-go/internal/models"
)

func TestHourBucket(t *testing.T) {
	cases := []struct {
		name string
		raw  float64
		want int
	}{
		{"half hour rounds up", 1230, 13},
		{"on the hour", 600, 6},
		{"minute before the hour", 559, 6},
		{"midnight", 0, 0},
		{"late evening", 2359, 24},
		{"quarter past", 915, 9},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HourBucket(tc.raw); got != tc.want {
				t.Errorf("HourBucket(%v) = %d; want %d", tc.raw, got, tc.want)
			}
		})
	}
}

const rawCSV = `Ticket number,Issue Date,Issue time,Latitude,Longitude
1,2015-12-21T00:00:00,1230,6439997.9,1802686.4
2,2015-06-06T00:00:00,559,6475000.0,1850000.0
3,2015-03-02T00:00:00,900,99999.0,1802686.4
4,2015-03-02T00:00:00,900,10000000.0,1802686.4
5,2014-07-04T00:00:00,1400,6439997.9,1802686.4
6,2016-01-01T00:00:00,1400,6439997.9,1802686.4
7,2015-03-02T00:00:00,oops,6439997.9,1802686.4
`

func defaultOptions() Options {
	return Options{
		YearFrom:     2015,
		YearTo:       2016,
		SentinelLow:  99999.0,
		SentinelHigh: 1e7,
	}
}

func TestExtractRaw(t *testing.T) {
	res, err := ExtractRaw(strings.NewReader(rawCSV), defaultOptions())
	if err != nil {
		t.Fatalf("ExtractRaw returned error: %v", err)
	}

	if res.Total != 7 {
		t.Errorf("Total = %d; want 7", res.Total)
	}
	if res.Kept != 2 || len(res.Records) != 2 {
		t.Fatalf("Kept = %d (%d records); want 2", res.Kept, len(res.Records))
	}
	if res.Dropped != 5 {
		t.Errorf("Dropped = %d; want 5", res.Dropped)
	}

	first := res.Records[0]
	if first.HourBucket != 13 {
		t.Errorf("record 0 hour bucket = %d; want 13", first.HourBucket)
	}
	// 2015-12-21 was a Monday.
	if first.DayOfWeek != "Monday" {
		t.Errorf("record 0 day = %s; want Monday", first.DayOfWeek)
	}

	second := res.Records[1]
	if second.HourBucket != 6 {
		t.Errorf("record 1 hour bucket = %d; want 6", second.HourBucket)
	}
	// 2015-06-06 was a Saturday.
	if second.DayOfWeek != "Saturday" {
		t.Errorf("record 1 day = %s; want Saturday", second.DayOfWeek)
	}

	// Reprojected coordinates must land in the Los Angeles basin.
	for i, rec := range res.Records {
		if rec.Longitude < -119.5 || rec.Longitude > -117.0 {
			t.Errorf("record %d longitude = %v; want within greater Los Angeles", i, rec.Longitude)
		}
		if rec.Latitude < 33.0 || rec.Latitude > 35.0 {
			t.Errorf("record %d latitude = %v; want within greater Los Angeles", i, rec.Latitude)
		}
	}
}

func TestExtractRawSentinelBoundsExclusive(t *testing.T) {
	// Values at the bounds themselves are sentinels, not coordinates.
	csv := "Issue Date,Issue time,Latitude,Longitude\n" +
		"2015-01-05T00:00:00,1000,99999.0,1800000.0\n" +
		"2015-01-05T00:00:00,1000,10000000.0,1800000.0\n" +
		"2015-01-05T00:00:00,1000,99999.5,1800000.0\n"

	res, err := ExtractRaw(strings.NewReader(csv), defaultOptions())
	if err != nil {
		t.Fatalf("ExtractRaw returned error: %v", err)
	}
	if res.Kept != 1 {
		t.Errorf("Kept = %d; want 1 (only the in-range easting)", res.Kept)
	}
}

func TestExtractRawMissingColumn(t *testing.T) {
	csv := "Issue Date,Latitude,Longitude\n2015-01-05,6439997.9,1802686.4\n"
	if _, err := ExtractRaw(strings.NewReader(csv), defaultOptions()); err == nil {
		t.Fatal("ExtractRaw with missing Issue time column must fail")
	}
}

func TestReducedRoundTrip(t *testing.T) {
	records := []models.Citation{
		{HourBucket: 13, Latitude: 34.05, Longitude: -118.25, DayOfWeek: "Monday"},
		{HourBucket: 6, Latitude: 33.94, Longitude: -118.40, DayOfWeek: "Saturday"},
		{HourBucket: 21, Latitude: 34.10, Longitude: -118.33, DayOfWeek: "Sunday"},
	}

	var buf bytes.Buffer
	if err := WriteReduced(&buf, records); err != nil {
		t.Fatalf("WriteReduced returned error: %v", err)
	}

	header := strings.SplitN(buf.String(), "\n", 2)[0]
	if header != "Issue time,Latitude,Longitude,DoW" {
		t.Errorf("header = %q; want fixed four-column order", header)
	}

	loaded, err := ReadReduced(&buf)
	if err != nil {
		t.Fatalf("ReadReduced returned error: %v", err)
	}
	if len(loaded) != len(records) {
		t.Fatalf("round trip returned %d records; want %d", len(loaded), len(records))
	}
	for i := range records {
		if loaded[i].HourBucket != records[i].HourBucket ||
			loaded[i].Latitude != records[i].Latitude ||
			loaded[i].Longitude != records[i].Longitude ||
			loaded[i].DayOfWeek != records[i].DayOfWeek {
			t.Errorf("record %d = %+v; want %+v", i, loaded[i], records[i])
		}
	}

	// Weekend filtering over the round-tripped data selects exactly the
	// Saturday and Sunday rows.
	var weekend []models.Citation
	for _, rec := range loaded {
		if models.DayWeekend.Matches(rec.DayOfWeek) {
			weekend = append(weekend, rec)
		}
	}
	if len(weekend) != 2 {
		t.Fatalf("weekend filter kept %d records; want 2", len(weekend))
	}
	for _, rec := range weekend {
		if rec.DayOfWeek != "Saturday" && rec.DayOfWeek != "Sunday" {
			t.Errorf("weekend filter kept %s", rec.DayOfWeek)
		}
	}
}
