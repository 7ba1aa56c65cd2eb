package store

import (
	"log"

	"github.com/Colile1/alx-final-project/models"
	"github.com/Colile1/alx-final-project/utils"

	"github.com/google/uuid"
)

// EnsureSeeded creates the demo garden and its two devices for an identity
// with no gardens. Seeding is idempotent: once any garden exists nothing is
// added. Reports whether seeding happened.
func (s *Store) EnsureSeeded(identityID string) bool {
	mu := s.lockIdentity(identityID)
	mu.Lock()
	defer mu.Unlock()

	if len(s.gw.Gardens(identityID)) > 0 {
		return false
	}

	now := s.now()
	garden := models.Garden{
		ID:          uuid.NewString(),
		Name:        "Garden 0 (Demo)",
		Location:    "Johannesburg, JHB",
		Description: "Welcome to your smart garden!",
		Plants: []models.Plant{
			{ID: "plant_" + uuid.NewString(), Name: "Tomatoes", Type: "Vegetable", PlantedDate: "2024-01-15"},
			{ID: "plant_" + uuid.NewString(), Name: "Basil", Type: "Herb", PlantedDate: "2024-01-20"},
		},
		Sensors:   append([]string(nil), utils.DefaultSensors...),
		CreatedAt: now,
	}

	devices := []models.Device{
		{
			ID:             uuid.NewString(),
			Name:           "Soil Moisture Sensor",
			Type:           models.DeviceSensor,
			GardenID:       garden.ID,
			Status:         models.StatusConnected,
			LastSeen:       now,
			Battery:        92,
			SignalStrength: 88,
		},
		{
			ID:             uuid.NewString(),
			Name:           "Weather Station",
			Type:           models.DeviceSensor,
			GardenID:       garden.ID,
			Status:         models.StatusConnected,
			LastSeen:       now,
			Battery:        78,
			SignalStrength: 95,
		},
	}

	if err := s.gw.SaveGardens(identityID, []models.Garden{garden}); err != nil {
		log.Printf("store: seeding gardens for %s: %v", identityID, err)
		return false
	}
	if err := s.gw.SaveDevices(identityID, devices); err != nil {
		log.Printf("store: seeding devices for %s: %v", identityID, err)
	}
	return true
}
