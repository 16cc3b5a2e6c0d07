// Package netdiscover finds network sonars over mDNS.
//
// Scanner implements the scanning half of driver.Discover: Start, Stop,
// List, Subscribe and Unsubscribe. Drivers for network devices embed a
// Scanner and add Config, Check and Connect.
//
// Devices advertise the service type _hyscan._tcp with TXT records:
//
//	sn=<serial number>      optional, becomes the device id
//	name=<display name>     optional, defaults to the instance name
//	model=<model name>      optional
//	multi=1                 the device accepts several clients
package netdiscover
