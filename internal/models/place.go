package models

// Place is a search hit from the external place provider.
type Place struct {
	ID          string  `json:"id"`
	Name        string  `json:"place_name"`
	Category    string  `json:"category_name"`
	Address     string  `json:"address_name"`
	RoadAddress string  `json:"road_address_name"`
	Phone       string  `json:"phone"`
	URL         string  `json:"place_url"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Distance    string  `json:"distance,omitempty"`
}

type PlaceSearchResult struct {
	Places        []Place `json:"places"`
	TotalCount    int     `json:"total_count"`
	PageableCount int     `json:"pageable_count"`
	IsEnd         bool    `json:"is_end"`
	Page          int     `json:"page"`
	Size          int     `json:"size"`
}
