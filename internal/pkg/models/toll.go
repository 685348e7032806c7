package models

// TollEntry is one recorded billing event for a vehicle: where it was, how
// fast it was going and what was charged. Entries are immutable once
// fetched and keep the server's ordering.
type TollEntry struct {
	ID             string  `json:"id"`
	Date           string  `json:"date"` // DD-MM-YYYY
	Time           string  `json:"time"` // HH:MM:SS
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Speed          float64 `json:"speed"` // km/h
	ChargesApplied Amount  `json:"charges_applied"`
}

// TravelHistoryResponse wraps the vehicle history payload.
type TravelHistoryResponse struct {
	Data []TollEntry `json:"data"`
}
