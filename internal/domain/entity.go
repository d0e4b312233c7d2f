package domain

// TrackedEntity is one watchlist member: a ticker symbol paired with the
// company display name used for hiring lookups.
type TrackedEntity struct {
	Ticker  string `json:"ticker"`
	Company string `json:"company"`
}

// Sector groups tracked entities under a display label. The order of Entities
// is the report order; it never changes within a run.
type Sector struct {
	Name     string          `json:"sector"`
	Entities []TrackedEntity `json:"entities"`
}
