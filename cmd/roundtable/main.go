package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/roundtable-dev/roundtable"
	"github.com/roundtable-dev/roundtable/agent"
	"github.com/roundtable-dev/roundtable/graph"
	"github.com/roundtable-dev/roundtable/internal/observability"
)

var (
	// Version information (set via ldflags)
	Version = "dev"

	// Command line flags
	configFile = flag.String("config", getEnv("CONFIG_FILE", "config/scenario.yaml"), "Scenario configuration file")
	httpPort   = flag.Int("http-port", getEnvInt("PORT", 8080), "HTTP server port")
	graphOut   = flag.String("graph-out", getEnv("GRAPH_OUT", ""), "Write interaction graph JSON to this path after the run")
)

func main() {
	flag.Parse()

	log.Printf("Starting Roundtable v%s", Version)
	log.Printf("Config: %s, HTTP Port: %d", *configFile, *httpPort)

	// Initialize observability
	observability.InitMetrics()
	if err := observability.InitTracingFromEnv(); err != nil {
		log.Printf("Tracing init failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	obsServer := observability.NewServer(*httpPort)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Starting HTTP server on :%d", *httpPort)
		if err := obsServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		// Scenario completion winds the whole process down.
		defer stop()
		return runScenario(ctx)
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := obsServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP server shutdown error: %v", err)
		}
		if err := observability.ShutdownTracing(shutdownCtx); err != nil {
			log.Printf("Tracing shutdown error: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
	log.Println("Roundtable stopped")
}

func runScenario(ctx context.Context) error {
	loader := roundtable.NewConfigLoader(&roundtable.OSFileReader{})
	config, err := loader.LoadConfig(*configFile)
	if err != nil {
		return err
	}

	mgr, err := roundtable.BuildManager(config)
	if err != nil {
		return err
	}

	report, err := roundtable.RunScenario(ctx, mgr, config)
	if err != nil {
		return err
	}
	printReport(mgr, report)

	if *graphOut != "" {
		g := graph.FromManager(config.Name, mgr)
		f, err := os.Create(*graphOut)
		if err != nil {
			return fmt.Errorf("failed to create graph file: %w", err)
		}
		defer f.Close()
		if err := g.WriteJSON(f); err != nil {
			return fmt.Errorf("failed to write graph: %w", err)
		}
		log.Printf("Interaction graph written to %s", *graphOut)
	}
	return nil
}

func printReport(mgr *agent.Manager, report agent.Report) {
	fmt.Printf("\n=== Execution Report ===\n")
	fmt.Printf("Rounds:        %d\n", report.Rounds)
	fmt.Printf("Messages:      %d\n", report.MessagesRouted)
	fmt.Printf("Terminated by: %s\n", report.TerminatedBy)

	fmt.Printf("\n=== Agents ===\n")
	for _, name := range mgr.List() {
		info := mgr.Snapshot()[name]
		fmt.Printf("%-12s role=%-36s status=%-10s queue=%d memory=%d\n",
			name, info.Role, info.Status, info.QueueDepth, info.MemorySize)
	}

	if undeliverable := mgr.Undeliverable(); len(undeliverable) > 0 {
		fmt.Printf("\n%d undeliverable message(s)\n", len(undeliverable))
	}
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var i int
		if _, err := fmt.Sscanf(value, "%d", &i); err == nil {
			return i
		}
	}
	return defaultValue
}
