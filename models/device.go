package models

import "time"

// Device types.
const (
	DeviceSensor     = "sensor"
	DeviceActuator   = "actuator"
	DeviceController = "controller"
)

// Device statuses.
const (
	StatusConnected    = "connected"
	StatusDisconnected = "disconnected"
)

// Device is a simulated piece of hardware bound to one garden. GardenID is a
// non-owning reference: a device may outlive its garden and readers must
// tolerate a dangling id.
type Device struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	GardenID       string    `json:"gardenId"`
	Status         string    `json:"status"`
	LastSeen       time.Time `json:"lastSeen"`
	Battery        int       `json:"battery"`
	SignalStrength int       `json:"signalStrength"`
}
