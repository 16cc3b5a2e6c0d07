// Package schema implements the typed key-value schema used to describe
// device parameters, capabilities and driver metadata.
//
// # Keys
//
// A schema is a flat set of keys addressed by slash-delimited paths:
//
//	/schema/id
//	/sources/ss-starboard/dev-id
//	/sources/ss-starboard/tvg/gain
//
// Each key carries:
//   - Type: boolean, integer, double, string or enum
//   - Default: the key value, typed according to Type
//   - Range: optional [min, max] with step for integer and double keys
//   - Access: read and/or write flags
//   - Name, Description: display metadata
//
// Key enumeration order is insertion order. Consumers that decode a schema
// must derive structure from paths, not from order.
//
// # Lifecycle
//
// A Builder collects keys and is not safe for concurrent use. Build returns
// an immutable Schema that may be shared between goroutines for reading.
//
// # Identity
//
// Every schema kind carries an integer id and a YYYYMMNN version at
// /schema/id and /schema/version. CheckID validates both before a consumer
// trusts any other key.
package schema
