package storage

import (
	"encoding/json"
	"log"
	"time"

	"github.com/Colile1/alx-final-project/config"
	"github.com/Colile1/alx-final-project/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Key layout. Per-identity collections live under
// c_gardens_<identityID>_<collection>; the user registry, active session and
// theme are global keys.
const (
	keyPrefix  = "c_gardens_"
	usersKey   = keyPrefix + "users"
	sessionKey = keyPrefix + "user"
	themeKey   = keyPrefix + "theme"

	CollGardens    = "gardens"
	CollDevices    = "devices"
	CollSensorData = "sensor_data"
)

// Entry is one stored collection: a key and a JSON payload.
type Entry struct {
	Key       string `gorm:"primaryKey"`
	Payload   string
	UpdatedAt time.Time
}

// Gateway is the persistence boundary. Every collection is a JSON-serialized
// sequence under a namespaced key; unreadable payloads degrade to empty
// rather than erroring.
type Gateway struct {
	db *gorm.DB
}

// Open connects to the configured database and migrates the entry table.
// DATABASE_URL selects postgres; otherwise a local sqlite file is used.
func Open(cfg config.Config) (*Gateway, error) {
	var dialector gorm.Dialector
	if cfg.DatabaseURL != "" {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.DatabasePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &Gateway{db: db}, nil
}

// Close releases the underlying database connection.
func (g *Gateway) Close() error {
	db, err := g.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}

// CollectionKey builds the namespaced key for one identity's collection.
func CollectionKey(identityID, name string) string {
	return keyPrefix + identityID + "_" + name
}

func (g *Gateway) get(key string) ([]byte, bool) {
	var entry Entry
	if err := g.db.First(&entry, "key = ?", key).Error; err != nil {
		return nil, false
	}
	return []byte(entry.Payload), true
}

func (g *Gateway) put(key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	entry := Entry{Key: key, Payload: string(payload), UpdatedAt: time.Now()}
	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&entry).Error
}

// load unmarshals the entry under key into out. A missing key or an
// unparsable payload leaves out untouched and reports false.
func (g *Gateway) load(key string, out any) bool {
	raw, ok := g.get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("storage: discarding unreadable payload for %s: %v", key, err)
		return false
	}
	return true
}

// Gardens returns the identity's garden collection, empty if absent.
func (g *Gateway) Gardens(identityID string) []models.Garden {
	var out []models.Garden
	if !g.load(CollectionKey(identityID, CollGardens), &out) {
		return nil
	}
	return out
}

func (g *Gateway) SaveGardens(identityID string, gardens []models.Garden) error {
	return g.put(CollectionKey(identityID, CollGardens), gardens)
}

// Devices returns the identity's device collection, empty if absent.
func (g *Gateway) Devices(identityID string) []models.Device {
	var out []models.Device
	if !g.load(CollectionKey(identityID, CollDevices), &out) {
		return nil
	}
	return out
}

func (g *Gateway) SaveDevices(identityID string, devices []models.Device) error {
	return g.put(CollectionKey(identityID, CollDevices), devices)
}

// Readings returns the identity's sensor readings, empty if absent.
func (g *Gateway) Readings(identityID string) []models.SensorReading {
	var out []models.SensorReading
	if !g.load(CollectionKey(identityID, CollSensorData), &out) {
		return nil
	}
	return out
}

func (g *Gateway) SaveReadings(identityID string, readings []models.SensorReading) error {
	return g.put(CollectionKey(identityID, CollSensorData), readings)
}

// Users returns the global account registry.
func (g *Gateway) Users() []models.User {
	var out []models.User
	if !g.load(usersKey, &out) {
		return nil
	}
	return out
}

func (g *Gateway) SaveUsers(users []models.User) error {
	return g.put(usersKey, users)
}

// SaveSession records the active session globally.
func (g *Gateway) SaveSession(s models.Session) error {
	return g.put(sessionKey, s)
}

// ClearSession removes the active session record.
func (g *Gateway) ClearSession() error {
	return g.db.Delete(&Entry{}, "key = ?", sessionKey).Error
}

// Theme returns the stored UI theme, defaulting to light.
func (g *Gateway) Theme() string {
	var theme string
	if !g.load(themeKey, &theme) {
		return "light"
	}
	return theme
}

func (g *Gateway) SaveTheme(theme string) error {
	return g.put(themeKey, theme)
}
