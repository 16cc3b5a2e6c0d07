// Package device builds and reads device schemas.
//
// A device schema is a schema.Schema carrying the device identity at
// /schema/id and /schema/version plus capability branches:
//
//	/sensors/<name>/...      sensors      (SensorSchema, ParseSensors)
//	/actuators/<name>/...    actuators    (ActuatorSchema, ParseActuators)
//	/sources/<source>/...    sonar sources (SonarSchema, ParseSources)
//
// Each capability kind also writes its own identity at
// /schema/<kind>/id and /schema/<kind>/version.
//
// # Encoding
//
// Encoders add one entity at a time. Add* creates the mandatory dev-id and
// the optional description; further Set* calls require that the entity was
// added first. All capability keys are read-only. A failed call does not
// remove keys written by earlier steps.
//
// # Decoding
//
// Decoders check the identities first, then enumerate entities by their
// dev-id key. Entities with incomplete mandatory data are skipped; the
// decode as a whole never fails because of one bad entity.
package device
