package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/duckchain-io/duckscan-mcp/internal/blockscout"
	"github.com/duckchain-io/duckscan-mcp/internal/common"
	"github.com/duckchain-io/duckscan-mcp/internal/mcp"
)

// ServerConfig holds MCP server settings.
type ServerConfig struct {
	Name string `toml:"name"`
	Port string `toml:"port"`
}

// UpstreamConfig holds the BlockScout connection settings.
type UpstreamConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Config holds all duckscan-mcp configuration.
type Config struct {
	Server   ServerConfig         `toml:"server"`
	Upstream UpstreamConfig       `toml:"upstream"`
	Logging  common.LoggingConfig `toml:"logging"`
}

// newDefaultConfig returns a Config with sensible defaults.
func newDefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Name: "DuckScan-MCP",
			Port: "4280",
		},
		Upstream: UpstreamConfig{
			BaseURL:        blockscout.DefaultBaseURL,
			TimeoutSeconds: 30,
		},
		Logging: common.LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console", "file"},
			FilePath:   "logs/duckscan-mcp.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}

// loadConfig loads configuration from a TOML file with defaults and env
// overrides. A missing file is not an error; defaults apply.
func loadConfig(path string) Config {
	cfg := newDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				log.Fatalf("Failed to read config file %s: %v", path, err)
			}
		} else {
			if err := toml.Unmarshal(data, &cfg); err != nil {
				log.Fatalf("Failed to parse config file %s: %v", path, err)
			}
		}
	}

	applyEnvOverrides(&cfg)

	return cfg
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(cfg *Config) {
	if url := os.Getenv("DUCKSCAN_BASE_URL"); url != "" {
		cfg.Upstream.BaseURL = url
	}
	if timeout := os.Getenv("DUCKSCAN_TIMEOUT"); timeout != "" {
		if secs, err := strconv.Atoi(timeout); err == nil && secs > 0 {
			cfg.Upstream.TimeoutSeconds = secs
		}
	}
	if port := os.Getenv("DUCKSCAN_MCP_PORT"); port != "" {
		cfg.Server.Port = port
	}
	if level := os.Getenv("DUCKSCAN_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
}

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport (for Claude Desktop)")
	configFile := flag.String("config", "duckscan-mcp.toml", "Path to config file")
	flag.Parse()

	// .env is optional; real env vars win over file entries
	_ = godotenv.Load()

	cfg := loadConfig(*configFile)

	common.LoadVersionFromFile()

	logger := common.NewLoggerFromConfig(cfg.Logging)

	client, err := blockscout.New(blockscout.Config{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second,
	}, logger)
	if err != nil {
		log.Fatalf("Failed to configure BlockScout client: %v", err)
	}

	srv := mcp.NewServer(cfg.Server.Name, client, logger)

	if *stdio {
		// Stdio transport — reads stdin, writes stdout
		if err := mcpserver.ServeStdio(srv.MCP); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Streamable HTTP transport behind a chi router
	streamable := mcpserver.NewStreamableHTTPServer(srv.MCP,
		mcpserver.WithStateLess(true),
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "ok",
			"version": common.GetVersion(),
		})
	})
	r.Handle("/mcp", streamable)

	addr := ":" + cfg.Server.Port
	httpServer := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("MCP Streamable HTTP listening")
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
			os.Exit(1)
		}
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
			os.Exit(1)
		}
	}
}
