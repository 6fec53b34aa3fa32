package models

// JourneyEstimate is the straight-line answer to a directions request. It is built once and never mutated.
type JourneyEstimate struct {
	Origin         ResolvedLocation `json:"origin"`
	Destination    ResolvedLocation `json:"destination"`
	DistanceKm     float64          `json:"distance_km"`
	DrivingTime    string           `json:"driving_time"`
	WalkingTime    string           `json:"walking_time"`
	NavigationLink string           `json:"navigation_link"`
	SafetyTips     []string         `json:"safety_tips"`
}
