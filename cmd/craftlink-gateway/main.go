// Command craftlink-gateway runs a CraftLink controller gateway.
//
// The gateway listens for WebSocket connections from in-game hosts, announces
// itself via mDNS so hosts and tools can find it, and optionally offers an
// interactive shell for driving peripherals on connected hosts.
//
// Usage:
//
//	craftlink-gateway [flags]
//
// Flags:
//
//	-config string      Configuration file path (YAML)
//	-listen string      Listen address (overrides config)
//	-path string        WebSocket endpoint path (overrides config)
//	-log-level string   Log level: debug, info, warn, error
//	-interactive        Enable interactive command mode
//	-no-mdns            Disable mDNS advertising
//
// Examples:
//
//	# Start a gateway with the interactive shell
//	craftlink-gateway -interactive
//
//	# Start from a config file on a custom port
//	craftlink-gateway -config /etc/craftlink.yaml -listen :9000
//
// Interactive Commands:
//
//	hosts                              - List connected hosts
//	names <host>                       - List attached peripherals
//	type <host> <side>                 - Show a peripheral's kind
//	wrap <host> <side>                 - Resolve a peripheral proxy
//	call <host> <side> <method> [...]  - Call a peripheral method
//	eval <host> <expr> [...]           - Evaluate a raw expression
//	listen <host> <side> <ch> [n]      - Receive modem messages
//	quit                               - Exit the gateway
package main

import (
	"context"
	"flag"
	stdlog "log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/craftlink/craftlink-go/cmd/craftlink-gateway/interactive"
	"github.com/craftlink/craftlink-go/pkg/config"
	"github.com/craftlink/craftlink-go/pkg/discovery"
	"github.com/craftlink/craftlink-go/pkg/log"
	"github.com/craftlink/craftlink-go/pkg/transport"
)

var (
	flagConfig      = flag.String("config", "", "Configuration file path (YAML)")
	flagListen      = flag.String("listen", "", "Listen address (overrides config)")
	flagPath        = flag.String("path", "", "WebSocket endpoint path (overrides config)")
	flagLogLevel    = flag.String("log-level", "", "Log level: debug, info, warn, error")
	flagInteractive = flag.Bool("interactive", false, "Enable interactive command mode")
	flagNoMDNS      = flag.Bool("no-mdns", false, "Disable mDNS advertising")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		stdlog.Fatalf("Config error: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slogLevel(cfg.Logging.Level),
	}))
	slog.SetDefault(logger)

	logger.Info("CraftLink gateway starting",
		"id", cfg.Gateway.ID,
		"listen", cfg.Listen.Address,
		"path", cfg.Listen.Path)

	var advertiser *discovery.Advertiser
	if cfg.Discovery.Enabled && !*flagNoMDNS {
		advertiser = discovery.NewAdvertiser(discovery.AdvertiserConfig{
			Interface: cfg.Discovery.Interface,
			TTL:       discovery.DefaultTTL,
		})
	}

	server := transport.NewServer(transport.ServerConfig{
		Address:     cfg.Listen.Address,
		Path:        cfg.Listen.Path,
		EvalTimeout: cfg.EvalTimeout(),
		EventBuffer: cfg.Events.Buffer,
		Logger:      log.NewSlogAdapter(logger),
		OnConnect: func(conn *transport.Conn) {
			logger.Info("host connected", "conn_id", conn.ID(), "remote", conn.RemoteAddr())
		},
		OnDisconnect: func(conn *transport.Conn) {
			logger.Info("host disconnected", "conn_id", conn.ID())
		},
	})

	if err := server.Start(); err != nil {
		stdlog.Fatalf("Failed to start server: %v", err)
	}
	logger.Info("listening for hosts", "addr", server.Addr().String())

	if advertiser != nil {
		port := listenPort(server)
		err := advertiser.Advertise(&discovery.GatewayInfo{
			GatewayID: cfg.Gateway.ID,
			Name:      cfg.Gateway.Name,
			Path:      cfg.Listen.Path,
			Port:      port,
		})
		if err != nil {
			logger.Warn("mDNS advertising failed", "error", err)
		} else {
			logger.Info("advertising via mDNS",
				"instance", discovery.InstanceName(cfg.Gateway.ID), "port", port)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *flagInteractive {
		shell, err := interactive.New(server)
		if err != nil {
			stdlog.Fatalf("Failed to create interactive shell: %v", err)
		}
		go shell.Run(ctx, cancel)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received signal", "signal", sig.String())
	case <-ctx.Done():
		// Cancelled by the interactive quit command.
	}

	logger.Info("shutting down")
	if advertiser != nil {
		advertiser.Stop()
	}
	if err := server.Stop(); err != nil {
		logger.Error("error stopping server", "error", err)
	}
}

func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if *flagConfig != "" {
		cfg, err = config.Load(*flagConfig)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = config.Default()
	}

	if *flagListen != "" {
		cfg.Listen.Address = *flagListen
	}
	if *flagPath != "" {
		cfg.Listen.Path = *flagPath
	}
	if *flagLogLevel != "" {
		cfg.Logging.Level = *flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func slogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// listenPort extracts the bound TCP port, resolving ":0" style addresses.
func listenPort(server *transport.Server) int {
	if addr, ok := server.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return transport.DefaultPort
}
