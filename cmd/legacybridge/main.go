// File path: cmd/legacybridge/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/nicodishanthj/legacybridge/internal/api"
	"github.com/nicodishanthj/legacybridge/internal/common"
	"github.com/nicodishanthj/legacybridge/internal/config"
	"github.com/nicodishanthj/legacybridge/internal/gateway"
	"github.com/nicodishanthj/legacybridge/internal/workflow"
)

func main() {
	logger := common.Logger()

	if err := godotenv.Load(); err != nil {
		logger.Debug("legacybridge: .env file not loaded", "error", err)
	} else {
		logger.Info("legacybridge: environment loaded from .env")
	}

	cfg, err := config.Load(".")
	if err != nil {
		logger.Error("legacybridge: config load failed", "error", err)
		fmt.Println("config error:", err)
		os.Exit(1)
	}

	addr := flag.String("addr", cfg.ServerAddress, "listen address")
	backend := flag.String("backend", cfg.BackendURL, "conversion backend base URL")
	simulate := flag.Bool("simulate", cfg.Simulate, "force simulated conversion output")
	target := flag.String("target", cfg.TargetLanguage, "default conversion target (dotnet or spring)")
	flag.Parse()

	logger.Info("legacybridge: startup initiated", "addr", *addr, "backend", *backend, "target", *target)

	client := selectGateway(cfg, *backend, *simulate)
	logger.Info("legacybridge: gateway selected", "gateway", client.Name())

	manager := workflow.NewManager(client, *target)
	server := api.NewServer(manager)

	logger.Info("legacybridge: server listening", "addr", *addr, "health", "/healthz")
	fmt.Printf("Serving on %s\n", *addr)
	if err := http.ListenAndServe(*addr, server); err != nil {
		logger.Error("legacybridge: server stopped", "error", err)
		fmt.Println("server stopped:", err)
	}
}

// selectGateway picks the backend client: an explicit simulate flag wins;
// a configured, healthy backend comes next; a configured OpenAI key allows
// direct mode; otherwise the simulated gateway keeps the demo usable.
func selectGateway(cfg config.Config, backend string, simulate bool) gateway.Client {
	logger := common.Logger()
	if simulate {
		logger.Info("legacybridge: simulation forced")
		return gateway.NewSimulatedClient()
	}
	if trimmed := strings.TrimSpace(backend); trimmed != "" {
		client := gateway.NewHTTPClient(trimmed, cfg.RequestTimeout)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Health(ctx); err != nil {
			logger.Warn("legacybridge: backend health probe failed", "backend", trimmed, "error", err)
		} else {
			return client
		}
	}
	if strings.TrimSpace(cfg.OpenAIKey) != "" {
		return gateway.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel)
	}
	logger.Warn("legacybridge: no backend reachable, falling back to simulated output")
	return gateway.NewSimulatedClient()
}
