// Package loader finds and loads driver modules.
//
// A driver directory is a registry of modules. Each module file is named
//
//	<prefix>-<name><extension>
//
// with prefix "hyscan" and extension ".drv" by default and name consisting
// of [0-9A-Za-z]. A module exports two entry points:
//
//	HyScanDriverDiscover func() driver.Discover
//	HyScanDriverInfo     func() *schema.Schema
//
// The info schema must carry the driver-info identity. Modules failing any
// check are never retained.
//
// Once a Discover object has been handed out its module stays resident
// until the process exits: notification callbacks may run code from the
// module for an unbounded time after the caller drops its reference. The
// Loader caches loaded modules by canonical path, so repeated loads return
// the same Module. All Loader methods are safe for concurrent use.
package loader
