package store

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/Colile1/alx-final-project/models"
	"github.com/Colile1/alx-final-project/storage"
	"github.com/Colile1/alx-final-project/utils"

	"github.com/google/uuid"
)

// GenerationInterval is how often the cycle appends synthetic readings.
const GenerationInterval = 2 * time.Minute

// ReadingsPerGarden bounds the stored reading count: after each cycle only
// the most recent ReadingsPerGarden × len(gardens) entries are retained.
const ReadingsPerGarden = 200

// Events receives the user-facing outcome of every command. The websocket
// hub implements it in production; tests pass nil.
type Events interface {
	Notify(identityID string, n models.Notification)
}

// Store owns the garden/device/reading/weather collections for every
// signed-in identity. Each command loads the affected collection through the
// gateway, mutates it, persists it, and notifies the identity's clients.
type Store struct {
	gw     *storage.Gateway
	events Events

	interval  time.Duration
	newTicker func(time.Duration) (<-chan time.Time, func())
	now       func() time.Time

	mu      sync.Mutex
	weather map[string]map[string]models.WeatherSnapshot
	cycles  map[string]chan struct{}
	locks   map[string]*sync.Mutex
}

// New builds a Store over the given gateway. events may be nil.
func New(gw *storage.Gateway, events Events) *Store {
	return &Store{
		gw:        gw,
		events:    events,
		interval:  GenerationInterval,
		newTicker: defaultTicker,
		now:       time.Now,
		weather:   make(map[string]map[string]models.WeatherSnapshot),
		cycles:    make(map[string]chan struct{}),
		locks:     make(map[string]*sync.Mutex),
	}
}

// lockIdentity returns the mutex serializing one identity's
// load→mutate→persist sequences. Commands run on concurrent request
// goroutines and the generation cycle runs on its own, so every write path
// for an identity must hold this lock or updates get lost.
func (s *Store) lockIdentity(identityID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.locks[identityID]
	if !ok {
		m = &sync.Mutex{}
		s.locks[identityID] = m
	}
	return m
}

func (s *Store) notify(identityID, title, message, level string) {
	if s.events == nil {
		return
	}
	s.events.Notify(identityID, models.Notification{Title: title, Message: message, Level: level})
}

// Gardens returns the identity's gardens.
func (s *Store) Gardens(identityID string) []models.Garden {
	return s.gw.Gardens(identityID)
}

// AddGarden creates a garden with the fixed four-sensor set and no plants.
func (s *Store) AddGarden(identityID string, req models.AddGardenRequest) (models.Garden, error) {
	if strings.TrimSpace(req.Name) == "" {
		return models.Garden{}, models.ErrValidation
	}

	mu := s.lockIdentity(identityID)
	mu.Lock()
	defer mu.Unlock()

	garden := models.Garden{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		Plants:      []models.Plant{},
		Sensors:     append([]string(nil), utils.DefaultSensors...),
		CreatedAt:   s.now(),
	}

	gardens := append(s.gw.Gardens(identityID), garden)
	if err := s.gw.SaveGardens(identityID, gardens); err != nil {
		s.notify(identityID, "Garden not saved", err.Error(), "error")
		return models.Garden{}, err
	}

	s.notify(identityID, "Garden created!", garden.Name+" has been added to your gardens.", "info")
	s.StartCycle(identityID)
	return garden, nil
}

// UpdateGarden patches name/location/description; empty fields are kept.
func (s *Store) UpdateGarden(identityID, gardenID string, req models.UpdateGardenRequest) (models.Garden, error) {
	mu := s.lockIdentity(identityID)
	mu.Lock()
	defer mu.Unlock()

	gardens := s.gw.Gardens(identityID)
	for i := range gardens {
		if gardens[i].ID != gardenID {
			continue
		}
		if req.Name != "" {
			gardens[i].Name = req.Name
		}
		if req.Location != "" {
			gardens[i].Location = req.Location
		}
		if req.Description != "" {
			gardens[i].Description = req.Description
		}
		if err := s.gw.SaveGardens(identityID, gardens); err != nil {
			s.notify(identityID, "Garden not saved", err.Error(), "error")
			return models.Garden{}, err
		}
		s.notify(identityID, "Garden updated!", "Your garden has been successfully updated.", "info")
		return gardens[i], nil
	}
	return models.Garden{}, models.ErrNotFound
}

// DeleteGarden removes the garden and cascades to every device and reading
// that references it.
func (s *Store) DeleteGarden(identityID, gardenID string) error {
	mu := s.lockIdentity(identityID)
	mu.Lock()
	defer mu.Unlock()

	gardens := s.gw.Gardens(identityID)
	kept := gardens[:0]
	for _, garden := range gardens {
		if garden.ID != gardenID {
			kept = append(kept, garden)
		}
	}
	if len(kept) == len(gardens) {
		return models.ErrNotFound
	}
	if err := s.gw.SaveGardens(identityID, kept); err != nil {
		return err
	}

	devices := s.gw.Devices(identityID)
	keptDevices := devices[:0]
	for _, device := range devices {
		if device.GardenID != gardenID {
			keptDevices = append(keptDevices, device)
		}
	}
	if err := s.gw.SaveDevices(identityID, keptDevices); err != nil {
		return err
	}

	readings := s.gw.Readings(identityID)
	keptReadings := readings[:0]
	for _, reading := range readings {
		if reading.GardenID != gardenID {
			keptReadings = append(keptReadings, reading)
		}
	}
	if err := s.gw.SaveReadings(identityID, keptReadings); err != nil {
		return err
	}

	s.notify(identityID, "Garden deleted", "Garden and all associated data have been removed.", "info")
	if len(kept) == 0 {
		s.StopCycle(identityID)
	}
	return nil
}

// DeviceView is a device with its garden name resolved for display. A
// dangling garden reference renders as "Unknown Garden".
type DeviceView struct {
	models.Device
	GardenName string `json:"gardenName"`
}

// Devices returns the identity's devices with garden names resolved.
func (s *Store) Devices(identityID string) []DeviceView {
	gardens := s.gw.Gardens(identityID)
	names := make(map[string]string, len(gardens))
	for _, garden := range gardens {
		names[garden.ID] = garden.Name
	}

	devices := s.gw.Devices(identityID)
	views := make([]DeviceView, 0, len(devices))
	for _, device := range devices {
		name, ok := names[device.GardenID]
		if !ok {
			name = "Unknown Garden"
		}
		views = append(views, DeviceView{Device: device, GardenName: name})
	}
	return views
}

// AddDevice connects a new device with randomized battery and signal in
// [50,100].
func (s *Store) AddDevice(identityID string, req models.AddDeviceRequest) (models.Device, error) {
	if strings.TrimSpace(req.Name) == "" {
		return models.Device{}, models.ErrValidation
	}

	mu := s.lockIdentity(identityID)
	mu.Lock()
	defer mu.Unlock()

	device := models.Device{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Type:           req.Type,
		GardenID:       req.GardenID,
		Status:         models.StatusConnected,
		LastSeen:       s.now(),
		Battery:        rand.Intn(51) + 50,
		SignalStrength: rand.Intn(51) + 50,
	}

	devices := append(s.gw.Devices(identityID), device)
	if err := s.gw.SaveDevices(identityID, devices); err != nil {
		s.notify(identityID, "Device not saved", err.Error(), "error")
		return models.Device{}, err
	}

	s.notify(identityID, "Device added!", device.Name+" has been connected.", "info")
	return device, nil
}

// UpdateDevice patches a device; empty fields are kept.
func (s *Store) UpdateDevice(identityID, deviceID string, req models.UpdateDeviceRequest) (models.Device, error) {
	mu := s.lockIdentity(identityID)
	mu.Lock()
	defer mu.Unlock()

	devices := s.gw.Devices(identityID)
	for i := range devices {
		if devices[i].ID != deviceID {
			continue
		}
		if req.Name != "" {
			devices[i].Name = req.Name
		}
		if req.Type != "" {
			devices[i].Type = req.Type
		}
		if req.GardenID != "" {
			devices[i].GardenID = req.GardenID
		}
		if req.Status != "" {
			devices[i].Status = req.Status
			devices[i].LastSeen = s.now()
		}
		if err := s.gw.SaveDevices(identityID, devices); err != nil {
			s.notify(identityID, "Device not saved", err.Error(), "error")
			return models.Device{}, err
		}
		s.notify(identityID, "Device updated!", "Device details have been successfully updated.", "info")
		return devices[i], nil
	}
	return models.Device{}, models.ErrNotFound
}

// DeleteDevice removes one device.
func (s *Store) DeleteDevice(identityID, deviceID string) error {
	mu := s.lockIdentity(identityID)
	mu.Lock()
	defer mu.Unlock()

	devices := s.gw.Devices(identityID)
	name := "Device"
	kept := devices[:0]
	for _, device := range devices {
		if device.ID == deviceID {
			name = device.Name
			continue
		}
		kept = append(kept, device)
	}
	if len(kept) == len(devices) {
		return models.ErrNotFound
	}
	if err := s.gw.SaveDevices(identityID, kept); err != nil {
		return err
	}
	s.notify(identityID, "Device deleted", name+" has been removed.", "info")
	return nil
}

// AddPlant appends a plant to one garden's embedded sequence.
func (s *Store) AddPlant(identityID, gardenID string, req models.AddPlantRequest) (models.Plant, error) {
	if strings.TrimSpace(req.Name) == "" {
		return models.Plant{}, models.ErrValidation
	}

	mu := s.lockIdentity(identityID)
	mu.Lock()
	defer mu.Unlock()

	gardens := s.gw.Gardens(identityID)
	for i := range gardens {
		if gardens[i].ID != gardenID {
			continue
		}
		plant := models.Plant{
			ID:          "plant_" + uuid.NewString(),
			Name:        req.Name,
			Type:        req.Type,
			PlantedDate: req.PlantedDate,
		}
		gardens[i].Plants = append(gardens[i].Plants, plant)
		if err := s.gw.SaveGardens(identityID, gardens); err != nil {
			s.notify(identityID, "Plant not saved", err.Error(), "error")
			return models.Plant{}, err
		}
		s.notify(identityID, "Plant added!", plant.Name+" has been added to the garden.", "info")
		return plant, nil
	}
	return models.Plant{}, models.ErrNotFound
}

// UpdatePlant patches one plant inside one garden.
func (s *Store) UpdatePlant(identityID, gardenID, plantID string, req models.UpdatePlantRequest) (models.Plant, error) {
	mu := s.lockIdentity(identityID)
	mu.Lock()
	defer mu.Unlock()

	gardens := s.gw.Gardens(identityID)
	for i := range gardens {
		if gardens[i].ID != gardenID {
			continue
		}
		for j := range gardens[i].Plants {
			if gardens[i].Plants[j].ID != plantID {
				continue
			}
			if req.Name != "" {
				gardens[i].Plants[j].Name = req.Name
			}
			if req.Type != "" {
				gardens[i].Plants[j].Type = req.Type
			}
			if req.PlantedDate != "" {
				gardens[i].Plants[j].PlantedDate = req.PlantedDate
			}
			if err := s.gw.SaveGardens(identityID, gardens); err != nil {
				s.notify(identityID, "Plant not saved", err.Error(), "error")
				return models.Plant{}, err
			}
			s.notify(identityID, "Plant updated!", "Plant details have been successfully updated.", "info")
			return gardens[i].Plants[j], nil
		}
		return models.Plant{}, models.ErrNotFound
	}
	return models.Plant{}, models.ErrNotFound
}

// DeletePlant removes one plant from one garden. Deleting a plant that does
// not exist is a no-op, not an error.
func (s *Store) DeletePlant(identityID, gardenID, plantID string) error {
	mu := s.lockIdentity(identityID)
	mu.Lock()
	defer mu.Unlock()

	gardens := s.gw.Gardens(identityID)
	for i := range gardens {
		if gardens[i].ID != gardenID {
			continue
		}
		name := "Plant"
		kept := gardens[i].Plants[:0]
		for _, plant := range gardens[i].Plants {
			if plant.ID == plantID {
				name = plant.Name
				continue
			}
			kept = append(kept, plant)
		}
		gardens[i].Plants = kept
		if err := s.gw.SaveGardens(identityID, gardens); err != nil {
			return err
		}
		s.notify(identityID, "Plant deleted", name+" has been removed from the garden.", "info")
		return nil
	}
	return models.ErrNotFound
}

// Readings returns the identity's sensor readings, optionally filtered to
// one garden.
func (s *Store) Readings(identityID, gardenID string) []models.SensorReading {
	readings := s.gw.Readings(identityID)
	if gardenID == "" {
		return readings
	}
	filtered := make([]models.SensorReading, 0, len(readings))
	for _, reading := range readings {
		if reading.GardenID == gardenID {
			filtered = append(filtered, reading)
		}
	}
	return filtered
}

// Export emits the identity's dataset in the requested format. It holds the
// identity lock so the document is a consistent snapshot, never a
// mid-cascade state.
func (s *Store) Export(identityID, email, format string) ([]byte, error) {
	mu := s.lockIdentity(identityID)
	mu.Lock()
	defer mu.Unlock()

	var out []byte
	var err error
	switch format {
	case "json":
		out, err = s.gw.ExportJSON(identityID, email)
	case "csv":
		out, err = s.gw.ExportCSV(identityID)
	default:
		return nil, models.ErrValidation
	}
	if err != nil {
		s.notify(identityID, "Export failed", err.Error(), "error")
		return nil, err
	}
	s.notify(identityID, "Data exported!", "Your garden data has been exported as "+strings.ToUpper(format)+".", "info")
	return out, nil
}

// Import merges an exported JSON document into the identity's collections.
func (s *Store) Import(identityID string, contents []byte) error {
	mu := s.lockIdentity(identityID)
	mu.Lock()
	defer mu.Unlock()

	gardens, _, err := s.gw.ImportJSON(identityID, contents)
	if err != nil {
		s.notify(identityID, "Import failed", "Unable to import data. Please check the file format.", "error")
		return err
	}
	s.notify(identityID, "Data imported!", "Your garden data has been successfully imported.", "info")
	if gardens > 0 {
		s.StartCycle(identityID)
	}
	return nil
}
