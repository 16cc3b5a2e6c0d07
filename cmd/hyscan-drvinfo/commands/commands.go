// Package commands implements the hyscan-drvinfo commands shared by the
// one-shot and interactive modes.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/screen-co/libhyscandriver-sub000/pkg/driver"
	"github.com/screen-co/libhyscandriver-sub000/pkg/inspect"
	"github.com/screen-co/libhyscandriver-sub000/pkg/loader"
)

// DefaultScanTimeout bounds one device scan.
const DefaultScanTimeout = 10 * time.Second

// ErrUsage is returned for malformed command arguments.
var ErrUsage = errors.New("usage")

// Commands runs driver inspection commands against one directory.
type Commands struct {
	Loader    *loader.Loader
	Dir       string
	Formatter *inspect.Formatter

	// ScanTimeout bounds Scan. Default: DefaultScanTimeout.
	ScanTimeout time.Duration
}

// New creates a command set for dir.
func New(l *loader.Loader, dir string) *Commands {
	return &Commands{
		Loader:      l,
		Dir:         dir,
		Formatter:   inspect.NewFormatter(),
		ScanTimeout: DefaultScanTimeout,
	}
}

// List prints the valid drivers in the directory.
func (c *Commands) List(w io.Writer) error {
	names, err := c.Loader.List(c.Dir)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintf(w, "no drivers in %s\n", c.Dir)
		return nil
	}
	for _, name := range names {
		info, err := c.info(name)
		if err != nil {
			fmt.Fprintf(w, "%-16s (%v)\n", name, err)
			continue
		}
		fmt.Fprintf(w, "%-16s %s  %s\n", name, info.Version, info.Description)
	}
	return nil
}

// Info prints the information of one driver.
func (c *Commands) Info(w io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: info <driver>", ErrUsage)
	}
	info, err := c.info(args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(w, c.Formatter.FormatInfo(info))
	return nil
}

func (c *Commands) info(name string) (driver.Info, error) {
	s, err := c.Loader.Info(c.Dir, name)
	if err != nil {
		return driver.Info{}, err
	}
	return driver.ParseInfo(s)
}

// completion adapts a channel to driver.DiscoverSubscriber.
type completion struct {
	done chan struct{}
}

func (c completion) OnProgress(float64) {}

func (c completion) OnCompleted() {
	select {
	case c.done <- struct{}{}:
	default:
	}
}

// Scan loads a driver, runs one device scan and prints the devices found.
func (c *Commands) Scan(ctx context.Context, w io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: scan <driver>", ErrUsage)
	}
	m, err := c.Loader.Load(c.Dir, args[0])
	if err != nil {
		return err
	}

	timeout := c.ScanTimeout
	if timeout <= 0 {
		timeout = DefaultScanTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	sub := completion{done: make(chan struct{}, 1)}
	m.Subscribe(sub)
	defer m.Unsubscribe(sub)

	if err := m.Start(); err != nil {
		return fmt.Errorf("start scan: %w", err)
	}
	select {
	case <-sub.done:
	case <-ctx.Done():
		_ = m.Stop()
		fmt.Fprintln(w, "scan timed out")
	}

	devices := m.List()
	if len(devices) == 0 {
		fmt.Fprintln(w, "no devices")
		return nil
	}
	for _, d := range devices {
		fmt.Fprintln(w, inspect.FormatSummary(d))
	}
	return nil
}

// Config prints the connection parameters a driver needs for a device.
func (c *Commands) Config(w io.Writer, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: config <driver> <uri>", ErrUsage)
	}
	m, err := c.Loader.Load(c.Dir, args[0])
	if err != nil {
		return err
	}
	s := m.Config(args[1])
	if s == nil {
		fmt.Fprintln(w, "no connection parameters")
		return nil
	}
	fmt.Fprint(w, c.Formatter.FormatSchema(s, ""))
	return nil
}

// Check probes a device through its driver.
func (c *Commands) Check(w io.Writer, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: check <driver> <uri>", ErrUsage)
	}
	m, err := c.Loader.Load(c.Dir, args[0])
	if err != nil {
		return err
	}
	if m.Check(args[1]) {
		fmt.Fprintln(w, "reachable")
	} else {
		fmt.Fprintln(w, "unreachable")
	}
	return nil
}

// Schema connects to a device and prints its schema below an optional
// prefix. The device is disconnected afterwards.
func (c *Commands) Schema(ctx context.Context, w io.Writer, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: schema <driver> <uri> [prefix]", ErrUsage)
	}
	prefix := ""
	if len(args) == 3 {
		p, err := inspect.ParsePath(args[2])
		if err != nil {
			return err
		}
		prefix = p
	}

	m, err := c.Loader.Load(c.Dir, args[0])
	if err != nil {
		return err
	}
	dev, err := m.Connect(ctx, args[1], nil)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer dev.Disconnect()

	fmt.Fprint(w, c.Formatter.FormatSchema(dev.Schema(), prefix))
	return nil
}

// Watch starts printing driver files appearing in and disappearing from
// the directory. Printing stops when ctx is done.
func (c *Commands) Watch(ctx context.Context, w io.Writer) error {
	return c.Loader.Watch(ctx, c.Dir, func(ev loader.WatchEvent) {
		fmt.Fprintf(w, "%s %s\n", ev.Op, ev.Name)
	})
}
