// Package interactive provides the interactive command-line interface
// for the CraftLink gateway.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/craftlink/craftlink-go/pkg/peripheral"
	"github.com/craftlink/craftlink-go/pkg/transport"
)

// commandTimeout bounds each remote round-trip issued from the shell.
const commandTimeout = 10 * time.Second

// Shell handles interactive mode for craftlink-gateway.
type Shell struct {
	server *transport.Server
	rl     *readline.Instance
}

// New creates a new interactive shell bound to the server's connections.
func New(server *transport.Server) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "craftlink> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Shell{server: server, rl: rl}, nil
}

// Stdout returns a writer that coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (s *Shell) Stdout() io.Writer {
	return s.rl.Stdout()
}

// Run starts the interactive command loop.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			s.printHelp()

		case "hosts", "ls":
			s.cmdHosts()

		case "names", "n":
			s.cmdNames(ctx, args)

		case "type", "t":
			s.cmdType(ctx, args)

		case "wrap", "w":
			s.cmdWrap(ctx, args)

		case "call", "c":
			s.cmdCall(ctx, args)

		case "eval", "e":
			s.cmdEval(ctx, args)

		case "listen":
			s.cmdListen(ctx, args)

		case "quit", "exit", "q":
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			cancel()
			return

		default:
			fmt.Fprintf(s.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.rl.Stdout(), `
CraftLink Gateway Commands:
  Hosts:
    hosts                              - List connected hosts
    eval <host> <expr> [args...]       - Evaluate a raw expression

  Peripherals:
    names <host>                       - List attached peripherals
    type <host> <side>                 - Show a peripheral's kind
    wrap <host> <side>                 - Resolve a peripheral proxy
    call <host> <side> <method> [...]  - Call a peripheral method

  Modems:
    listen <host> <side> <ch> [n]      - Receive n modem messages (default 1)

  General:
    help                               - Show this help
    quit                               - Exit gateway

  <host> is a list index from 'hosts' or a connection id prefix.`)
}

// resolveConn maps a host argument (list index or id prefix) to a connection.
func (s *Shell) resolveConn(arg string) (*transport.Conn, error) {
	conns := s.server.Connections()
	if len(conns) == 0 {
		return nil, errors.New("no hosts connected")
	}
	sort.Slice(conns, func(i, j int) bool { return conns[i].ID() < conns[j].ID() })

	if idx, err := strconv.Atoi(arg); err == nil {
		if idx < 1 || idx > len(conns) {
			return nil, fmt.Errorf("host index %d out of range (1-%d)", idx, len(conns))
		}
		return conns[idx-1], nil
	}

	for _, conn := range conns {
		if strings.HasPrefix(conn.ID(), arg) {
			return conn, nil
		}
	}
	return nil, fmt.Errorf("no host matching %q", arg)
}

func (s *Shell) cmdHosts() {
	conns := s.server.Connections()
	if len(conns) == 0 {
		fmt.Fprintln(s.rl.Stdout(), "No hosts connected")
		return
	}
	sort.Slice(conns, func(i, j int) bool { return conns[i].ID() < conns[j].ID() })

	fmt.Fprintf(s.rl.Stdout(), "\nConnected Hosts (%d):\n", len(conns))
	for idx, conn := range conns {
		fmt.Fprintf(s.rl.Stdout(), "  %d. %s (%s)\n", idx+1, conn.ID(), conn.RemoteAddr())
	}
}

func (s *Shell) cmdNames(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: names <host>")
		return
	}
	conn, err := s.resolveConn(args[0])
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}

	callCtx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	names, err := peripheral.Names(callCtx, conn)
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}
	if len(names) == 0 {
		fmt.Fprintln(s.rl.Stdout(), "No peripherals attached")
		return
	}
	for _, name := range names {
		fmt.Fprintf(s.rl.Stdout(), "  %s\n", name)
	}
}

func (s *Shell) cmdType(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: type <host> <side>")
		return
	}
	conn, err := s.resolveConn(args[0])
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}

	callCtx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	kind, err := peripheral.TypeOf(callCtx, conn, args[1])
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}
	if kind == nil {
		fmt.Fprintf(s.rl.Stdout(), "Nothing attached at %s\n", args[1])
		return
	}
	fmt.Fprintf(s.rl.Stdout(), "%s: %s\n", args[1], *kind)
}

func (s *Shell) cmdWrap(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: wrap <host> <side>")
		return
	}
	conn, err := s.resolveConn(args[0])
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}

	callCtx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	p, err := peripheral.Wrap(callCtx, conn, args[1])
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}
	if p == nil {
		fmt.Fprintf(s.rl.Stdout(), "Nothing attached at %s\n", args[1])
		return
	}
	fmt.Fprintf(s.rl.Stdout(), "%T bound to %s\n", p, p.Handle())
}

func (s *Shell) cmdCall(ctx context.Context, args []string) {
	if len(args) < 3 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: call <host> <side> <method> [args...]")
		return
	}
	conn, err := s.resolveConn(args[0])
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}

	base := peripheral.NewBase(conn, peripheral.NewHandle(peripheral.AccessorExpr, args[1]))

	callCtx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	res, err := base.Call(callCtx, args[2], parseArgs(args[3:])...)
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}
	s.printValues(res.Values())
}

func (s *Shell) cmdEval(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: eval <host> <expr> [args...]")
		return
	}
	conn, err := s.resolveConn(args[0])
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}

	callCtx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	res, err := conn.Eval(callCtx, args[1], parseArgs(args[2:])...)
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}
	s.printValues(res.Values())
}

func (s *Shell) cmdListen(ctx context.Context, args []string) {
	if len(args) < 3 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: listen <host> <side> <channel> [count]")
		return
	}
	conn, err := s.resolveConn(args[0])
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}
	channel, err := strconv.Atoi(args[2])
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Invalid channel: %v\n", err)
		return
	}
	count := 1
	if len(args) >= 4 {
		if count, err = strconv.Atoi(args[3]); err != nil || count < 1 {
			fmt.Fprintln(s.rl.Stdout(), "Invalid count")
			return
		}
	}

	wrapCtx, cancel := context.WithTimeout(ctx, commandTimeout)
	p, err := peripheral.Wrap(wrapCtx, conn, args[1])
	cancel()
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}

	var sub *peripheral.Subscription
	switch m := p.(type) {
	case *peripheral.WirelessModem:
		sub, err = m.Receive(ctx, channel)
	case *peripheral.WiredModem:
		sub, err = m.Receive(ctx, channel)
	default:
		fmt.Fprintf(s.rl.Stdout(), "Not a modem at %s\n", args[1])
		return
	}
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}
	defer sub.Close()

	fmt.Fprintf(s.rl.Stdout(), "Listening on channel %d (Ctrl-C to stop)...\n", channel)
	for i := 0; i < count; i++ {
		msg, err := sub.Next(ctx)
		if err != nil {
			fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
			return
		}
		fmt.Fprintf(s.rl.Stdout(), "  [%d] reply=%d distance=%.1f payload=%v\n",
			i+1, msg.ReplyChannel, msg.Distance, msg.Payload)
	}
}

func (s *Shell) printValues(values []any) {
	if len(values) == 0 {
		fmt.Fprintln(s.rl.Stdout(), "ok (no values)")
		return
	}
	for _, v := range values {
		fmt.Fprintf(s.rl.Stdout(), "  %v\n", v)
	}
}

// parseArgs converts shell words to typed call arguments: integers, floats,
// booleans, and the literal nil are recognized; everything else is a string.
func parseArgs(words []string) []any {
	args := make([]any, 0, len(words))
	for _, w := range words {
		switch {
		case w == "nil":
			args = append(args, nil)
		case w == "true":
			args = append(args, true)
		case w == "false":
			args = append(args, false)
		default:
			if n, err := strconv.ParseInt(w, 10, 64); err == nil {
				args = append(args, n)
				break
			}
			if f, err := strconv.ParseFloat(w, 64); err == nil {
				args = append(args, f)
				break
			}
			args = append(args, w)
		}
	}
	return args
}
