package models

import "testing"

func TestParseDayFilter(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    DayFilter
		wantErr bool
	}{
		{"empty means no filter", "", DayAny, false},
		{"day name", "Tuesday", DayTuesday, false},
		{"case insensitive", "saturday", DaySat, false},
		{"weekend", "Weekend", DayWeekend, false},
		{"weekday", "weekday", DayWeekday, false},
		{"unknown rejected", "Funday", DayAny, true},
		{"abbreviation rejected", "Mon", DayAny, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDayFilter(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseDayFilter(%q) = %v; want error", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDayFilter(%q) returned error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseDayFilter(%q) = %v; want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestDayFilterMatches(t *testing.T) {
	if !DayWeekend.Matches("Saturday") || !DayWeekend.Matches("Sunday") {
		t.Error("weekend must match Saturday and Sunday")
	}
	if DayWeekend.Matches("Wednesday") {
		t.Error("weekend must not match Wednesday")
	}
	if !DayWeekday.Matches("Wednesday") || DayWeekday.Matches("Sunday") {
		t.Error("weekday must match Wednesday and not Sunday")
	}
	if !DayAny.Matches("Friday") {
		t.Error("unset filter must match everything")
	}
	if !DayFriday.Matches("Friday") || DayFriday.Matches("Monday") {
		t.Error("single-day filter must match only its day")
	}
}

func TestParseTimeOfDay(t *testing.T) {
	if _, err := ParseTimeOfDay("brunch"); err == nil {
		t.Error("unknown time-of-day value must be rejected")
	}
	got, err := ParseTimeOfDay("Afternoon")
	if err != nil {
		t.Fatalf("ParseTimeOfDay(Afternoon) returned error: %v", err)
	}
	if got != TimeAfternoon {
		t.Errorf("ParseTimeOfDay(Afternoon) = %v; want %v", got, TimeAfternoon)
	}
}

func TestTimeOfDayMatches(t *testing.T) {
	cases := []struct {
		bucket int
		want   bool
	}{
		{11, false},
		{12, true}, // inclusive lower bound
		{17, true},
		{18, false}, // exclusive upper bound
	}
	for _, tc := range cases {
		if got := TimeAfternoon.Matches(tc.bucket); got != tc.want {
			t.Errorf("Afternoon.Matches(%d) = %v; want %v", tc.bucket, got, tc.want)
		}
	}

	if !TimeAny.Matches(3) || !TimeAny.Matches(23) {
		t.Error("unset filter must match every bucket")
	}
}

func TestPointOfInterestValidate(t *testing.T) {
	if err := NamedLocation("Staples Center").Validate(); err != nil {
		t.Errorf("named PoI failed validation: %v", err)
	}
	if err := CoordinateLocation(-118.25, 34.05).Validate(); err != nil {
		t.Errorf("coordinate PoI failed validation: %v", err)
	}
	if err := (PointOfInterest{}).Validate(); err == nil {
		t.Error("empty PoI must fail validation")
	}
	both := PointOfInterest{Place: "x", Coords: &Coordinate{}}
	if err := both.Validate(); err == nil {
		t.Error("PoI with both arms must fail validation")
	}
}
