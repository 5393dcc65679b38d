// Command sleeper-server exposes the Sleeper fantasy-sports API as MCP tools,
// over stdio by default or streamable HTTP with --http.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/draffetseder/sleeper-mcp/internal/config"
	"github.com/draffetseder/sleeper-mcp/internal/logging"
	"github.com/draffetseder/sleeper-mcp/internal/sleeper"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	var (
		cfgFile     string
		httpAddr    string
		mcpPath     string
		baseURL     string
		requireAuth bool
		authHeader  string
		logLevel    string
		logFormat   string
	)

	root := &cobra.Command{
		Use:          "sleeper-mcp",
		Short:        "MCP server for the Sleeper fantasy-sports API",
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := cfgFile
			if path == "" {
				path = config.DefaultConfigPath()
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			fl := cmd.Flags()
			if fl.Changed("http") {
				cfg.HTTPAddr = httpAddr
			}
			if fl.Changed("path") {
				cfg.MCPPath = mcpPath
			}
			if fl.Changed("base-url") {
				cfg.BaseURL = baseURL
			}
			if fl.Changed("require-auth") {
				cfg.RequireAuth = requireAuth
			}
			if fl.Changed("auth-header") {
				cfg.AuthHeader = authHeader
			}
			if fl.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if fl.Changed("log-format") {
				cfg.LogFormat = logFormat
			}

			// stdout carries the protocol in stdio mode, so logs go to stderr.
			logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

			api := sleeper.NewClient(cfg.BaseURL, cfg.HTTPTimeout())
			server, registry := newServer(api, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if cfg.HTTPAddr == "" {
				logger.Info("serving MCP over stdio", "upstream", api.BaseURL)
				return server.Run(ctx, &mcp.StdioTransport{})
			}

			apiKey := strings.TrimSpace(os.Getenv("SLEEPER_MCP_API_KEY"))
			if cfg.RequireAuth && apiKey == "" {
				return fmt.Errorf("SLEEPER_MCP_API_KEY is required (set env var or run with --require-auth=false)")
			}

			router := newRouter(server, registry, httpOptions{
				MCPPath:    cfg.MCPPath,
				APIKey:     apiKey,
				AuthHeader: cfg.AuthHeader,
			})
			logger.Info("MCP HTTP server listening", "addr", cfg.HTTPAddr, "path", cfg.MCPPath, "upstream", api.BaseURL)
			return serveHTTP(ctx, cfg.HTTPAddr, router)
		},
	}

	root.Flags().StringVar(&cfgFile, "config", "", "config file (default: ~/.sleeper-mcp/config.yaml)")
	root.Flags().StringVar(&httpAddr, "http", "", "HTTP listen address (empty = stdio transport)")
	root.Flags().StringVar(&mcpPath, "path", "/mcp", "HTTP path for MCP endpoint")
	root.Flags().StringVar(&baseURL, "base-url", sleeper.DefaultBaseURL, "Sleeper API base URL")
	root.Flags().BoolVar(&requireAuth, "require-auth", true, "require API key auth via SLEEPER_MCP_API_KEY in HTTP mode")
	root.Flags().StringVar(&authHeader, "auth-header", "X-API-Key", "HTTP header to read API key from")
	root.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug|info|warn|error")
	root.Flags().StringVar(&logFormat, "log-format", "text", "log format: text|json")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
