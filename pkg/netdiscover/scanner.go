package netdiscover

import (
	"cmp"
	"context"
	"log/slog"
	"net"
	"slices"
	"sync"
	"time"

	"github.com/enbility/zeroconf/v3"

	"github.com/screen-co/libhyscandriver-sub000/pkg/driver"
)

// Defaults.
const (
	DefaultService     = "_hyscan._tcp"
	Domain             = "local."
	DefaultScheme      = "tcp"
	DefaultScanTimeout = 5 * time.Second
)

// progressSteps is the number of progress notifications per scan.
const progressSteps = 10

// BrowseFunc browses for service instances until ctx is done.
type BrowseFunc func(ctx context.Context, service, domain string, entries, removed chan *zeroconf.ServiceEntry) error

// Config configures a Scanner.
type Config struct {
	// Service is the mDNS service type. Default: "_hyscan._tcp".
	Service string

	// Scheme is the URI scheme of listed devices. Default: "tcp".
	Scheme string

	// Interface restricts browsing to one network interface.
	// Empty string means all interfaces.
	Interface string

	// ScanTimeout is the duration of one scan. Default: 5 seconds.
	ScanTimeout time.Duration

	// Logger for scan events (optional).
	Logger *slog.Logger

	// Browse performs the mDNS browse. Default: zeroconf.Browse.
	// Set this in tests to feed entries directly.
	Browse BrowseFunc
}

func (c *Config) applyDefaults() {
	if c.Service == "" {
		c.Service = DefaultService
	}
	if c.Scheme == "" {
		c.Scheme = DefaultScheme
	}
	if c.ScanTimeout <= 0 {
		c.ScanTimeout = DefaultScanTimeout
	}
	if c.Browse == nil {
		c.Browse = c.zeroconfBrowse
	}
}

func (c *Config) zeroconfBrowse(ctx context.Context, service, domain string, entries, removed chan *zeroconf.ServiceEntry) error {
	var opts []zeroconf.ClientOption
	if c.Interface != "" {
		iface, err := net.InterfaceByName(c.Interface)
		if err == nil {
			opts = append(opts, zeroconf.SelectIfaces([]net.Interface{*iface}))
		}
	}
	return zeroconf.Browse(ctx, service, domain, entries, removed, opts...)
}

// Scanner discovers devices over mDNS. Devices found by earlier scans stay
// listed until they are withdrawn.
type Scanner struct {
	config Config

	mu          sync.Mutex
	entries     map[string]Entry
	subscribers []driver.DiscoverSubscriber
	cancel      context.CancelFunc
	done        chan struct{}
}

// New creates a scanner.
func New(config Config) *Scanner {
	config.applyDefaults()
	return &Scanner{
		config:  config,
		entries: make(map[string]Entry),
	}
}

// Start begins a scan. Starting a running scanner does nothing.
func (s *Scanner) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.config.ScanTimeout)
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.scan(ctx, cancel, s.done)
	return nil
}

// Stop ends a running scan and waits until subscribers were told it
// completed.
func (s *Scanner) Stop() error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	// done stays set after a scan ends, so a Stop racing the final
	// notifications still waits for them.
	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
	return nil
}

// List returns the known devices sorted by id.
func (s *Scanner) List() []driver.DeviceSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]driver.DeviceSummary, 0, len(s.entries))
	for _, e := range s.entries {
		if d, ok := e.Summary(s.config.Scheme); ok {
			out = append(out, d)
		}
	}
	slices.SortFunc(out, func(a, b driver.DeviceSummary) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Lookup returns the known device with the given URI.
func (s *Scanner) Lookup(uri string) (driver.DeviceSummary, bool) {
	for _, d := range s.List() {
		if d.URI == uri {
			return d, true
		}
	}
	return driver.DeviceSummary{}, false
}

// Subscribe registers a scan notification receiver.
func (s *Scanner) Subscribe(sub driver.DiscoverSubscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, sub)
}

// Unsubscribe removes a receiver registered with Subscribe.
func (s *Scanner) Unsubscribe(sub driver.DiscoverSubscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = slices.DeleteFunc(s.subscribers, func(x driver.DiscoverSubscriber) bool { return x == sub })
}

func (s *Scanner) scan(ctx context.Context, cancel context.CancelFunc, done chan struct{}) {
	defer close(done)

	entries := make(chan *zeroconf.ServiceEntry)
	removed := make(chan *zeroconf.ServiceEntry)
	go func() {
		if err := s.config.Browse(ctx, s.config.Service, Domain, entries, removed); err != nil {
			s.debugLog("browse failed", "service", s.config.Service, "reason", err)
		}
	}()

	ticker := time.NewTicker(max(s.config.ScanTimeout/progressSteps, time.Millisecond))
	defer ticker.Stop()
	step := 0

	for ctx.Err() == nil {
		select {
		case e, ok := <-entries:
			if !ok {
				entries = nil
				continue
			}
			s.add(entryFromZeroconf(e))

		case e, ok := <-removed:
			if !ok {
				removed = nil
				continue
			}
			s.remove(entryFromZeroconf(e))

		case <-ticker.C:
			if step < progressSteps-1 {
				step++
				s.notify(func(sub driver.DiscoverSubscriber) {
					sub.OnProgress(float64(step * 100 / progressSteps))
				})
			}

		case <-ctx.Done():
		}
	}
	cancel()

	s.mu.Lock()
	s.cancel = nil
	s.mu.Unlock()

	s.debugLog("scan completed", "service", s.config.Service, "devices", len(s.List()))
	s.notify(func(sub driver.DiscoverSubscriber) {
		sub.OnProgress(100)
		sub.OnCompleted()
	})
}

// add records an entry, merging addresses of an instance seen on several
// interfaces.
func (s *Scanner) add(e Entry) {
	if e.Instance == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.entries[e.Instance]; ok {
		existing.Addrs = mergeAddresses(existing.Addrs, e.Addrs)
		if len(e.Text) > 0 {
			existing.Text = e.Text
		}
		s.entries[e.Instance] = existing
		return
	}
	s.entries[e.Instance] = e
	s.debugLog("device found", "instance", e.Instance, "host", e.Host, "port", e.Port)
}

// remove drops the addresses of a withdrawn entry and forgets the instance
// when none remain.
func (s *Scanner) remove(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.entries[e.Instance]
	if !ok {
		return
	}
	existing.Addrs = removeAddresses(existing.Addrs, e.Addrs)
	if len(existing.Addrs) == 0 || len(e.Addrs) == 0 {
		delete(s.entries, e.Instance)
		s.debugLog("device lost", "instance", e.Instance)
		return
	}
	s.entries[e.Instance] = existing
}

func (s *Scanner) notify(fn func(driver.DiscoverSubscriber)) {
	s.mu.Lock()
	subs := slices.Clone(s.subscribers)
	s.mu.Unlock()

	for _, sub := range subs {
		fn(sub)
	}
}

func (s *Scanner) debugLog(msg string, args ...any) {
	if s.config.Logger != nil {
		s.config.Logger.Debug(msg, args...)
	}
}
