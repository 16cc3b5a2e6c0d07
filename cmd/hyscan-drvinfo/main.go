// Command hyscan-drvinfo inspects hyscan driver modules.
//
// Usage:
//
//	hyscan-drvinfo [flags] [command [args...]]
//
// Flags:
//
//	-path string       Driver directory (default $HYSCAN_DRIVER_PATH or ".")
//	-log-level string  Log level: debug, info, warn, error (default "warn")
//	-cache string      Driver info cache file (optional)
//	-api string        Expected driver API version, YYYYMMNN or YYYY.MM.NN
//	-i                 Interactive mode
//
// Commands:
//
//	list                          List valid drivers (default)
//	info <driver>                 Show driver information
//	scan <driver>                 Run a device scan and list devices
//	config <driver> <uri>         Show connection parameters of a device
//	check <driver> <uri>          Probe a device
//	schema <driver> <uri> [path]  Connect and show the device schema
//	watch                         Report driver files added or removed
//
// Examples:
//
//	# List drivers installed in /usr/lib/hyscan/drivers
//	hyscan-drvinfo -path /usr/lib/hyscan/drivers
//
//	# Show the capabilities of the simulated sonar
//	hyscan-drvinfo schema dummy sim://sidescan /sources
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/screen-co/libhyscandriver-sub000/cmd/hyscan-drvinfo/commands"
	"github.com/screen-co/libhyscandriver-sub000/pkg/loader"
	"github.com/screen-co/libhyscandriver-sub000/pkg/version"
)

// EnvDriverPath names the environment variable holding the default driver
// directory.
const EnvDriverPath = "HYSCAN_DRIVER_PATH"

// Config holds the command configuration.
type Config struct {
	Path        string
	LogLevel    string
	CachePath   string
	APIVersion  string
	Interactive bool
}

var config Config

func init() {
	flag.StringVar(&config.Path, "path", defaultPath(), "Driver directory")
	flag.StringVar(&config.LogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	flag.StringVar(&config.CachePath, "cache", "", "Driver info cache file")
	flag.StringVar(&config.APIVersion, "api", "", "Expected driver API version (default: built-in)")
	flag.BoolVar(&config.Interactive, "i", false, "Interactive mode")
}

func defaultPath() string {
	if p := os.Getenv(EnvDriverPath); p != "" {
		return p
	}
	return "."
}

func main() {
	flag.Parse()

	logger := setupLogging(config.LogLevel)

	lc, err := loaderConfig(config, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hyscan-drvinfo: %v\n", err)
		os.Exit(2)
	}
	cmds := commands.New(loader.New(lc), config.Path)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if config.Interactive {
		shell, err := commands.NewShell(cmds)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		shell.Run(ctx)
		return
	}

	if err := run(ctx, cmds, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "hyscan-drvinfo: %v\n", err)
		if errors.Is(err, commands.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// loaderConfig builds the loader configuration from the command flags.
func loaderConfig(c Config, logger *slog.Logger) (loader.Config, error) {
	lc := loader.Config{
		Logger:          logger,
		InfoCachePath:   c.CachePath,
		CheckAPIVersion: true,
	}
	if c.APIVersion != "" {
		api, err := version.Parse(c.APIVersion)
		if err != nil {
			return loader.Config{}, fmt.Errorf("%w: -api: %v", commands.ErrUsage, err)
		}
		lc.APIVersion = api
	}
	return lc, nil
}

func run(ctx context.Context, cmds *commands.Commands, args []string) error {
	if len(args) == 0 {
		return cmds.List(os.Stdout)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "list":
		return cmds.List(os.Stdout)
	case "info":
		return cmds.Info(os.Stdout, rest)
	case "scan":
		return cmds.Scan(ctx, os.Stdout, rest)
	case "config":
		return cmds.Config(os.Stdout, rest)
	case "check":
		return cmds.Check(os.Stdout, rest)
	case "schema":
		return cmds.Schema(ctx, os.Stdout, rest)
	case "watch":
		if err := cmds.Watch(ctx, os.Stdout); err != nil {
			return err
		}
		<-ctx.Done()
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", commands.ErrUsage, cmd)
	}
}

func setupLogging(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
