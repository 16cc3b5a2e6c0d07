package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// Shell is the interactive mode of hyscan-drvinfo.
type Shell struct {
	cmds *Commands
	rl   *readline.Instance
}

// NewShell creates an interactive shell running cmds.
func NewShell(cmds *Commands) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "drv> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("list"),
			readline.PcItem("info"),
			readline.PcItem("scan"),
			readline.PcItem("config"),
			readline.PcItem("check"),
			readline.PcItem("schema"),
			readline.PcItem("watch"),
			readline.PcItem("help"),
			readline.PcItem("quit"),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Shell{cmds: cmds, rl: rl}, nil
}

// Stdout returns a writer that coordinates with the readline input.
func (s *Shell) Stdout() io.Writer {
	return s.rl.Stdout()
}

// Run reads commands until quit, EOF or ctx is done.
func (s *Shell) Run(ctx context.Context) {
	defer s.rl.Close()

	s.printHelp()

	for ctx.Err() == nil {
		line, err := s.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		if !s.Exec(ctx, strings.ToLower(parts[0]), parts[1:]) {
			return
		}
	}
}

// Exec runs one command. It returns false when the shell should exit.
func (s *Shell) Exec(ctx context.Context, cmd string, args []string) bool {
	out := s.rl.Stdout()

	var err error
	switch cmd {
	case "help", "?":
		s.printHelp()
	case "list", "ls":
		err = s.cmds.List(out)
	case "info":
		err = s.cmds.Info(out, args)
	case "scan":
		err = s.cmds.Scan(ctx, out, args)
	case "config":
		err = s.cmds.Config(out, args)
	case "check":
		err = s.cmds.Check(out, args)
	case "schema":
		err = s.cmds.Schema(ctx, out, args)
	case "watch":
		err = s.cmds.Watch(ctx, out)
	case "quit", "exit", "q":
		return false
	default:
		err = fmt.Errorf("unknown command %q, type help", cmd)
	}
	if err != nil {
		fmt.Fprintf(s.rl.Stderr(), "error: %v\n", err)
	}
	return true
}

func (s *Shell) printHelp() {
	fmt.Fprintf(s.rl.Stdout(), `
Driver directory: %s

Commands:
  list                          - List valid drivers
  info <driver>                 - Show driver information
  scan <driver>                 - Run a device scan and list devices
  config <driver> <uri>         - Show connection parameters of a device
  check <driver> <uri>          - Probe a device
  schema <driver> <uri> [path]  - Connect and show the device schema
  watch                         - Report driver files added or removed
  help                          - Show this help
  quit                          - Exit

`, s.cmds.Dir)
}
