package models

// Citation is the reduced, persisted form of a parking citation: issue hour
// bucket, geographic coordinates in degrees, and day-of-week name. Raw
// timestamp and state-plane coordinates are dropped during extraction.
type Citation struct {
	ID         int64   `json:"id" db:"id"`
	HourBucket int     `json:"hour_bucket" db:"hour_bucket"` // 0-24, rounded issue hour
	Latitude   float64 `json:"latitude" db:"latitude"`
	Longitude  float64 `json:"longitude" db:"longitude"`
	DayOfWeek  string  `json:"day_of_week" db:"day_of_week"` // "Sunday".."Saturday"
}

// CitationsResponse is a paginated page of citations.
type CitationsResponse struct {
	Data       []Citation `json:"data"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
	TotalPages int        `json:"totalPages"`
}

// SummaryResponse reports aggregate counts over the stored citations.
type SummaryResponse struct {
	Total     int64            `json:"total"`
	ByDay     map[string]int64 `json:"by_day"`
	ByHour    map[int]int64    `json:"by_hour"`
	PerDay    float64          `json:"per_day,omitempty"` // total / (365 * years)
	YearsSpan float64          `json:"years_span,omitempty"`
}
