package domain

// GroupCount is a grouped aggregate row (state, district, category or
// constituency name plus the number of approved events under it).
type GroupCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// CadreActivity ranks a cadre member by submitted event count.
type CadreActivity struct {
	UserID       string `json:"userId"`
	Name         string `json:"name"`
	District     string `json:"district,omitempty"`
	Constituency string `json:"constituency,omitempty"`
	EventCount   int64  `json:"eventCount"`
}

// DayCount is one day of the events-over-time series.
type DayCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int64  `json:"count"`
}

// AnalyticsSummary is the admin dashboard aggregate.
type AnalyticsSummary struct {
	TotalEvents         int64           `json:"totalEvents"`
	EventsLast7Days     int64           `json:"eventsLast7Days"`
	EventsLast30Days    int64           `json:"eventsLast30Days"`
	EventsByState       []GroupCount    `json:"eventsByState"`
	EventsByDistrict    []GroupCount    `json:"eventsByDistrict"`
	EventsByCategory    []GroupCount    `json:"eventsByCategory"`
	TopConstituencies   []GroupCount    `json:"topConstituencies"`
	TopCadres           []CadreActivity `json:"topCadres"`
	TotalMediaByteViews int64           `json:"totalMediaByteViews"`
	EventsOverTime      []DayCount      `json:"eventsOverTime"`
}
