// Package driver defines the contracts a driver module satisfies and the
// driver-info schema a module reports about itself.
//
// A module exposes a Discover object. Discover scans for attachable devices
// and connects to them; the returned Device additionally implements any of
// Sonar, Sensor and Actuator depending on the hardware found:
//
//	dev, err := disc.Connect(ctx, uri, params)
//	if sonar, ok := dev.(driver.Sonar); ok {
//		...
//	}
//
// The framework never implements these interfaces itself. It only forwards
// calls to the implementation obtained from a loaded module.
package driver
