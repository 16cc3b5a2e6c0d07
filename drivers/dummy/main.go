// Command dummy is the simulated side-scan sonar driver, built as a
// loadable module:
//
//	go build -buildmode=plugin -o hyscan-dummy.drv ./drivers/dummy
package main

import (
	"log/slog"
	"os"

	"github.com/screen-co/libhyscandriver-sub000/pkg/driver"
	"github.com/screen-co/libhyscandriver-sub000/pkg/examples"
	"github.com/screen-co/libhyscandriver-sub000/pkg/schema"
)

// HyScanDriverDiscover creates the driver's discovery object. Network
// discovery is enabled when HYSCAN_DUMMY_MDNS is set.
func HyScanDriverDiscover() driver.Discover {
	cfg := examples.DiscoverConfig{
		Network: os.Getenv("HYSCAN_DUMMY_MDNS") != "",
		Logger:  slog.Default().With("driver", examples.DriverName),
	}
	return examples.NewDiscover(cfg)
}

// HyScanDriverInfo returns the driver information schema.
func HyScanDriverInfo() *schema.Schema {
	return examples.InfoSchema()
}

func main() {}
