// Package examples provides a reference driver built on the hyscan driver
// framework.
//
// The example shows:
//   - Describing device capabilities in a YAML description file
//   - Building a device schema from the description
//   - Validating control calls against the decoded capabilities
//   - Implementing driver.Discover with static and mDNS-discovered devices
//
// Available examples:
//   - SideScan: a dual-frequency side-scan sonar with a GNSS receiver and a
//     pan actuator
//   - Discover: the driver's discovery object, exported by drivers/dummy
//
// These examples can serve as templates for real drivers.
package examples
