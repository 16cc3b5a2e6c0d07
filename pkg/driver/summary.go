package driver

import "github.com/google/uuid"

// DeviceSummary describes a device found by Discover.
type DeviceSummary struct {
	// ID uniquely identifies the device across scans.
	ID string

	// Name is a human readable device name.
	Name string

	// Model is the device model name.
	Model string

	// URI is the address passed to Config, Check and Connect.
	URI string

	// Multi is true when the device can be shared by several clients.
	Multi bool
}

// NewDeviceSummary returns a summary with ID set. A device that reports no
// serial number gets a random id.
func NewDeviceSummary(serial, name, model, uri string) DeviceSummary {
	id := serial
	if id == "" {
		id = uuid.NewString()
	}
	return DeviceSummary{
		ID:    id,
		Name:  name,
		Model: model,
		URI:   uri,
	}
}
