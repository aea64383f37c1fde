// internal/api/docs.go
package api

// These types only describe request bodies for the Swagger UI.

type SignUpRequestDoc struct {
	Email    string `json:"email" example:"traveler@example.com"`
	Nickname string `json:"nickname" example:"여행자"`
	Password string `json:"password" example:"trip2025!"`
}

type LoginRequestDoc struct {
	Email    string `json:"email" example:"traveler@example.com"`
	Password string `json:"password" example:"trip2025!"`
}

type TripRequestDoc struct {
	Title     string   `json:"title" example:"Jeju"`
	StartDate string   `json:"start_date" example:"2025-01-10"`
	EndDate   string   `json:"end_date" example:"2025-01-13"`
	Region    string   `json:"region,omitempty" example:"Jeju"`
	RegionLat *float64 `json:"region_lat,omitempty" example:"33.4996"`
	RegionLng *float64 `json:"region_lng,omitempty" example:"126.5312"`
}

type TripPlaceRequestDoc struct {
	PlaceID    string  `json:"place_id,omitempty" example:"8134591"`
	PlaceName  string  `json:"place_name" example:"Seongsan Ilchulbong"`
	Address    string  `json:"address" example:"Seongsan-eup, Seogwipo-si"`
	Latitude   float64 `json:"latitude" example:"33.4581"`
	Longitude  float64 `json:"longitude" example:"126.9426"`
	Memo       string  `json:"memo,omitempty" example:"sunrise"`
	VisitTime  string  `json:"visit_time" example:"06:30"`
	VisitOrder int     `json:"visit_order" example:"1"`
}
