// Package capability defines the structured capability descriptors of
// sensors, actuators and sonar sources.
//
// Descriptors are plain values. They are written into a device schema by
// the encoders in package device and reconstructed from a schema by the
// decoders there. Capability bit-sets travel through the schema as
// space-joined token strings:
//
//	ActuatorScan|ActuatorManual      "scan manual"
//	TVGAuto|TVGLinearDB              "auto linear-db"
//
// Device description files (YAML) provide the same descriptors for drivers
// that prefer to declare their hardware statically.
package capability
