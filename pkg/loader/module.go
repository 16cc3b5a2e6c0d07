package loader

import (
	"context"

	"github.com/screen-co/libhyscandriver-sub000/pkg/driver"
	"github.com/screen-co/libhyscandriver-sub000/pkg/schema"
)

// Module is a resident driver module. It forwards the driver.Discover
// calls to the module's own implementation.
type Module struct {
	name       string
	path       string
	info       driver.Info
	infoSchema *schema.Schema
	discover   driver.Discover

	// lib is never closed; see the package documentation.
	lib Library
}

var _ driver.Discover = (*Module)(nil)

// Name returns the driver name.
func (m *Module) Name() string { return m.name }

// Path returns the canonical module file path.
func (m *Module) Path() string { return m.path }

// Info returns the decoded driver info.
func (m *Module) Info() driver.Info { return m.info }

// InfoSchema returns the driver-info schema reported by the module.
func (m *Module) InfoSchema() *schema.Schema { return m.infoSchema }

// Discover returns the module's Discover object.
func (m *Module) Discover() driver.Discover { return m.discover }

func (m *Module) Start() error { return m.discover.Start() }
func (m *Module) Stop() error { return m.discover.Stop() }
func (m *Module) List() []driver.DeviceSummary { return m.discover.List() }
func (m *Module) Config(uri string) *schema.Schema { return m.discover.Config(uri) }
func (m *Module) Check(uri string) bool { return m.discover.Check(uri) }
func (m *Module) Subscribe(s driver.DiscoverSubscriber) { m.discover.Subscribe(s) }
func (m *Module) Unsubscribe(s driver.DiscoverSubscriber) { m.discover.Unsubscribe(s) }

func (m *Module) Connect(ctx context.Context, uri string, params driver.Params) (driver.Device, error) {
	return m.discover.Connect(ctx, uri, params)
}
