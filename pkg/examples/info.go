package examples

import (
	"github.com/screen-co/libhyscandriver-sub000/pkg/driver"
	"github.com/screen-co/libhyscandriver-sub000/pkg/schema"
)

// Driver identification.
const (
	DriverName        = "dummy"
	DriverDescription = "Simulated side-scan sonar"
	DriverVersion     = "1.0.0"
	DriverID          = "20190127"
)

// Info returns the driver information published by the module.
func Info() driver.Info {
	return driver.Info{
		Name:        DriverName,
		Description: DriverDescription,
		Version:     DriverVersion,
		ID:          DriverID,
	}
}

// InfoSchema returns the information schema of the module, or nil if it
// cannot be built.
func InfoSchema() *schema.Schema {
	s, err := driver.NewInfoSchema(Info())
	if err != nil {
		return nil
	}
	return s
}
