package models

// Request payloads, one per command. Required fields are enforced by binding
// before they reach the store.

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AddGardenRequest struct {
	Name        string `json:"name" binding:"required"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// UpdateGardenRequest is a patch: empty fields are left unchanged.
type UpdateGardenRequest struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type AddDeviceRequest struct {
	Name     string `json:"name" binding:"required"`
	Type     string `json:"type" binding:"required,oneof=sensor actuator controller"`
	GardenID string `json:"gardenId" binding:"required"`
}

type UpdateDeviceRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	GardenID string `json:"gardenId"`
	Status   string `json:"status"`
}

type AddPlantRequest struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type"`
	PlantedDate string `json:"plantedDate"`
}

type UpdatePlantRequest struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	PlantedDate string `json:"plantedDate"`
}

type ThemeRequest struct {
	Theme string `json:"theme" binding:"required,oneof=dark light"`
}
