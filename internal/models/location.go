package models

// ResolvedLocation is a point on the map together with the human-readable address the resolver returned for it.
type ResolvedLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// AutoLocation is the caller's approximate position as inferred from a public IP address.
type AutoLocation struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	City         string  `json:"city"`
	Country      string  `json:"country"`
	Address      string  `json:"address"`
	NearestPlace *Place  `json:"nearest_place,omitempty"`
}

// Place is a named landmark from the local gazetteer.
type Place struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Resolved converts a gazetteer entry into the resolver's output shape.
func (p Place) Resolved() ResolvedLocation {
	address := p.Address
	if address == "" {
		address = p.Name
	}
	return ResolvedLocation{Latitude: p.Latitude, Longitude: p.Longitude, Address: address}
}
