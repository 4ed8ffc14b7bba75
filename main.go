package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nstehr/vimy/vimy-hero/agent"
	"github.com/nstehr/vimy/vimy-hero/config"
	"github.com/nstehr/vimy/vimy-hero/ipc"
	"github.com/nstehr/vimy/vimy-hero/observe"
	"github.com/nstehr/vimy/vimy-hero/rules"
	"go.opentelemetry.io/otel"
)

const banner = `
██╗   ██╗██╗███╗   ███╗██╗   ██╗
██║   ██║██║████╗ ████║╚██╗ ██╔╝
██║   ██║██║██╔████╔██║ ╚████╔╝
╚██╗ ██╔╝██║██║╚██╔╝██║  ╚██╔╝
 ╚████╔╝ ██║██║ ╚═╝ ██║   ██║
  ╚═══╝  ╚═╝╚═╝     ╚═╝   ╚═╝

Adventure-Map Capture Planner`

func main() {
	configPath := flag.String("config", "", "path to YAML config (defaults are used when empty)")
	flag.Parse()

	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	fmt.Println(banner)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			slog.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	setLevel(level, cfg.Server.LogLevel)

	slog.Info("starting vimy-hero", "behaviors", len(cfg.Behaviors))

	shutdownMetrics, err := observe.InitProvider(cfg.Server.MetricsAddr)
	if err != nil {
		slog.Error("failed to init metrics", "error", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownMetrics(ctx)
	}()

	met, err := observe.NewMetrics(otel.GetMeterProvider())
	if err != nil {
		slog.Error("failed to create instruments", "error", err)
		os.Exit(1)
	}

	engine, err := rules.NewEngine(rules.CompilePolicy(cfg.Policy))
	if err != nil {
		slog.Error("failed to compile visit gates", "error", err)
		os.Exit(1)
	}

	settings := func() *config.Config { return cfg }
	if *configPath != "" {
		w, err := config.NewWatcher(*configPath, func(_, next *config.Config) {
			setLevel(level, next.Server.LogLevel)
			if err := engine.Swap(rules.CompilePolicy(next.Policy)); err != nil {
				slog.Error("visit gates not swapped", "error", err)
			}
		})
		if err != nil {
			slog.Error("failed to watch config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		defer w.Stop()
		settings = w.Current
	}

	socketPath := cfg.Server.Socket

	// Unix sockets leave behind a file on unclean shutdown; remove it so we can rebind.
	if err := os.RemoveAll(socketPath); err != nil {
		slog.Error("failed to clean up socket", "path", socketPath, "error", err)
		os.Exit(1)
	}

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		slog.Error("failed to listen on socket", "path", socketPath, "error", err)
		os.Exit(1)
	}
	defer listener.Close()
	defer os.Remove(socketPath)

	slog.Info("listening on domain socket", "path", socketPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				select {
				case <-ctx.Done():
					return
				default:
					slog.Error("failed to accept connection", "error", err)
					continue
				}
			}
			slog.Info("new connection accepted")
			go handleConn(ctx, conn, engine, settings, met)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
}

func handleConn(ctx context.Context, conn net.Conn, engine *rules.Engine, settings func() *config.Config, met *observe.Metrics) {
	c := ipc.NewConnection(conn, nil)
	a := agent.New(c, engine, settings, met)
	c.RegisterHandler(ipc.TypeHello, a.HandleHello)
	c.RegisterHandler(ipc.TypeWorldState, a.HandleWorldState)
	c.ReadLoop(ctx)
}

func setLevel(v *slog.LevelVar, l config.LogLevel) {
	switch l {
	case "debug":
		v.Set(slog.LevelDebug)
	case "warn":
		v.Set(slog.LevelWarn)
	case "error":
		v.Set(slog.LevelError)
	default:
		v.Set(slog.LevelInfo)
	}
}
