package storage

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Colile1/alx-final-project/models"
)

// ExportDocument is the JSON export shape. Import accepts the same document
// with any subset of the collection fields present.
type ExportDocument struct {
	Gardens    []models.Garden        `json:"gardens"`
	Devices    []models.Device        `json:"devices"`
	SensorData []models.SensorReading `json:"sensorData"`
	ExportedAt time.Time              `json:"exportedAt"`
	User       string                 `json:"user"`
}

// ExportJSON emits the identity's full dataset as a single document.
func (g *Gateway) ExportJSON(identityID, email string) ([]byte, error) {
	doc := ExportDocument{
		Gardens:    g.Gardens(identityID),
		Devices:    g.Devices(identityID),
		SensorData: g.Readings(identityID),
		ExportedAt: time.Now(),
		User:       email,
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ExportCSV emits the identity's sensor readings as a flat table, resolving
// garden ids to names. A dangling garden id becomes "Unknown".
func (g *Gateway) ExportCSV(identityID string) ([]byte, error) {
	gardens := g.Gardens(identityID)
	names := make(map[string]string, len(gardens))
	for _, garden := range gardens {
		names[garden.ID] = garden.Name
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writer.Write([]string{"Garden", "Sensor Type", "Value", "Unit", "Timestamp", "Status"})
	for _, reading := range g.Readings(identityID) {
		name, ok := names[reading.GardenID]
		if !ok {
			name = "Unknown"
		}
		writer.Write([]string{
			name,
			reading.SensorType,
			fmt.Sprintf("%.1f", reading.Value),
			reading.Unit,
			reading.Timestamp.Format(time.RFC3339),
			reading.Status,
		})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ImportJSON merges an exported document into the identity's collections.
// Gardens and sensor readings are appended, never replaced. Malformed input
// reports ErrParse.
func (g *Gateway) ImportJSON(identityID string, contents []byte) (gardens, readings int, err error) {
	var doc ExportDocument
	if err := json.Unmarshal(contents, &doc); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", models.ErrParse, err)
	}

	if len(doc.Gardens) > 0 {
		merged := append(g.Gardens(identityID), doc.Gardens...)
		if err := g.SaveGardens(identityID, merged); err != nil {
			return 0, 0, err
		}
		gardens = len(doc.Gardens)
	}
	if len(doc.SensorData) > 0 {
		merged := append(g.Readings(identityID), doc.SensorData...)
		if err := g.SaveReadings(identityID, merged); err != nil {
			return gardens, 0, err
		}
		readings = len(doc.SensorData)
	}
	return gardens, readings, nil
}
