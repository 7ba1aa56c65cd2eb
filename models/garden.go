package models

import "time"

// Garden is a named monitored location. Plants are embedded and owned by the
// garden; Sensors is the fixed set of sensor type names assigned at creation.
type Garden struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Plants      []Plant   `json:"plants"`
	Sensors     []string  `json:"sensors"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Plant lives inside exactly one garden and is mutated only through
// garden-scoped operations.
type Plant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	PlantedDate string `json:"plantedDate"`
}
