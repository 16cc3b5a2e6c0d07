package examples

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"slices"
	"sync"
	"time"

	"github.com/screen-co/libhyscandriver-sub000/pkg/device"
	"github.com/screen-co/libhyscandriver-sub000/pkg/driver"
	"github.com/screen-co/libhyscandriver-sub000/pkg/netdiscover"
	"github.com/screen-co/libhyscandriver-sub000/pkg/schema"
)

// SimulatorURI is the address of the built-in simulated side-scan sonar.
const SimulatorURI = "sim://sidescan"

// Connection parameter keys.
const (
	ParamTimeout = "/connection/timeout"
	ParamSerial  = "/connection/serial"
)

// DefaultConnectTimeout bounds the reachability probe of network devices.
const DefaultConnectTimeout = 5 * time.Second

// ErrUnknownURI is returned for addresses the driver does not handle.
var ErrUnknownURI = errors.New("unknown device uri")

// DiscoverConfig configures a Discover.
type DiscoverConfig struct {
	// Network enables mDNS discovery of network sonars.
	Network bool

	// Scanner configures mDNS discovery when Network is set.
	Scanner netdiscover.Config

	// Logger for discovery and connect events (optional).
	Logger *slog.Logger
}

// Discover finds the simulated sonar and, optionally, network sonars
// advertised over mDNS. It implements driver.Discover.
type Discover struct {
	config  DiscoverConfig
	scanner *netdiscover.Scanner
	sim     driver.DeviceSummary

	mu          sync.Mutex
	subscribers []driver.DiscoverSubscriber
}

var _ driver.Discover = (*Discover)(nil)

// NewDiscover creates the driver's discovery object.
func NewDiscover(config DiscoverConfig) *Discover {
	d := &Discover{
		config: config,
		sim:    driver.NewDeviceSummary("sim-0001", "Side-scan simulator", "SSS-2F", SimulatorURI),
	}
	if config.Network {
		if config.Scanner.Logger == nil {
			config.Scanner.Logger = config.Logger
		}
		d.scanner = netdiscover.New(config.Scanner)
	}
	return d
}

// Start begins a scan. Without network discovery the scan completes at
// once, asynchronously.
func (d *Discover) Start() error {
	if d.scanner != nil {
		return d.scanner.Start()
	}
	subs := d.subscriberList()
	go func() {
		for _, sub := range subs {
			sub.OnProgress(100)
			sub.OnCompleted()
		}
	}()
	return nil
}

func (d *Discover) Stop() error {
	if d.scanner != nil {
		return d.scanner.Stop()
	}
	return nil
}

// List returns the simulator followed by the network devices.
func (d *Discover) List() []driver.DeviceSummary {
	out := []driver.DeviceSummary{d.sim}
	if d.scanner != nil {
		out = append(out, d.scanner.List()...)
	}
	return out
}

// Config returns the connection parameters of a handled device.
func (d *Discover) Config(uri string) *schema.Schema {
	if !d.handles(uri) {
		return nil
	}
	s, err := connectSchema()
	if err != nil {
		d.debugLog("connection schema", "reason", err)
		return nil
	}
	return s
}

func connectSchema() (*schema.Schema, error) {
	b := schema.NewBuilder()
	if err := b.CreateDouble(ParamTimeout, "Timeout", "Connection timeout, s", DefaultConnectTimeout.Seconds()); err != nil {
		return nil, err
	}
	if err := b.SetDoubleRange(ParamTimeout, 0.1, 60, 0.1); err != nil {
		return nil, err
	}
	if err := b.CreateString(ParamSerial, "Serial", "Expected serial number, empty to accept any", ""); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

// Check probes the device. The simulator is always reachable; network
// devices must accept a TCP connection.
func (d *Discover) Check(uri string) bool {
	if uri == SimulatorURI {
		return true
	}
	if !d.handles(uri) {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), DefaultConnectTimeout)
	defer cancel()
	return d.probe(ctx, uri) == nil
}

// Connect opens the device at uri.
func (d *Discover) Connect(ctx context.Context, uri string, params driver.Params) (driver.Device, error) {
	if !d.handles(uri) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownURI, uri)
	}

	cs, err := connectSchema()
	if err != nil {
		return nil, err
	}
	timeout := DefaultConnectTimeout
	serial := ""
	for path, v := range params {
		if err := checkParam(cs, path, v); err != nil {
			return nil, err
		}
		switch path {
		case ParamTimeout:
			timeout = time.Duration(v.(float64) * float64(time.Second))
		case ParamSerial:
			serial = v.(string)
		}
	}

	summary := d.sim
	if uri != SimulatorURI {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		if err := d.probe(ctx, uri); err != nil {
			return nil, err
		}
		summary, _ = d.scanner.Lookup(uri)
	}
	if serial != "" && serial != summary.ID {
		return nil, fmt.Errorf("serial mismatch: want %s, device reports %s", serial, summary.ID)
	}

	dev, err := NewSideScan(SideScanConfig{URI: uri, Serial: summary.ID, Model: summary.Model})
	if err != nil {
		return nil, err
	}
	if !device.Check(dev.Schema()) {
		return nil, device.ErrIncompatibleSchema
	}
	d.infoLog("device connected", "uri", uri, "id", summary.ID)
	return dev, nil
}

func (d *Discover) probe(ctx context.Context, uri string) error {
	u, err := url.Parse(uri)
	if err != nil {
		return err
	}
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", u.Host)
	if err != nil {
		return err
	}
	return conn.Close()
}

func (d *Discover) handles(uri string) bool {
	if uri == SimulatorURI {
		return true
	}
	if d.scanner == nil {
		return false
	}
	_, ok := d.scanner.Lookup(uri)
	return ok
}

func (d *Discover) Subscribe(sub driver.DiscoverSubscriber) {
	if d.scanner != nil {
		d.scanner.Subscribe(sub)
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.subscribers = append(d.subscribers, sub)
}

func (d *Discover) Unsubscribe(sub driver.DiscoverSubscriber) {
	if d.scanner != nil {
		d.scanner.Unsubscribe(sub)
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.subscribers = slices.DeleteFunc(d.subscribers, func(x driver.DiscoverSubscriber) bool { return x == sub })
}

func (d *Discover) subscriberList() []driver.DiscoverSubscriber {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.subscribers)
}

func (d *Discover) debugLog(msg string, args ...any) {
	if d.config.Logger != nil {
		d.config.Logger.Debug(msg, args...)
	}
}

func (d *Discover) infoLog(msg string, args ...any) {
	if d.config.Logger != nil {
		d.config.Logger.Info(msg, args...)
	}
}
