package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/localstash/docstash/internal/config"
	"github.com/localstash/docstash/internal/mcp"
	"github.com/localstash/docstash/internal/store"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"list": true, "read": true, "search": true, "check": true,
	"save": true, "capture": true, "summary": true,
	"help": true,
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode() bool {
	if len(os.Args) < 2 {
		return false // No args → MCP server
	}
	arg := os.Args[1]
	// Known subcommand → CLI
	if cliCommands[arg] {
		return true
	}
	// --help or --version → CLI
	if arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" {
		return true
	}
	return false // Default → MCP server
}

// isHelpOrVersion returns true if the user is requesting help or version info.
func isHelpOrVersion() bool {
	if len(os.Args) < 2 {
		return false
	}
	arg := os.Args[1]
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" || arg == "help"
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner() {
	fmt.Println(`
   ___  ___  ___ ___ _____ _   ___ _  _
  |   \/ _ \/ __/ __|_   _/_\ / __| || |
  | |) | (_) \__ \__ \ | |/ _ \\__ \ __ |
  |___/ \___/|___/___/ |_/_/ \_\___/_||_|

  Local document knowledge base

  Usage: docstash <command> [options]
         docstash --help

  MCP server mode requires piped input.`)
}

// baseDir resolves the docstash home directory.
func baseDir() (string, error) {
	if dir := os.Getenv("DOCSTASH_HOME"); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".docstash"), nil
}

func main() {
	// Optional .env in the working directory; absence is fine.
	_ = godotenv.Load()

	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	// Handle --help/--version before touching the store
	if isHelpOrVersion() {
		app := newCLIApp(nil, nil)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Stdout carries the MCP protocol; all logging goes to stderr.
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "docstash"})

	base, err := baseDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.PhotosPath(), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to create %s: %v\n", cfg.PhotosPath(), err)
		os.Exit(1)
	}

	if unknown := mcp.ValidateDisabledTools(cfg.DisabledTools); len(unknown) > 0 {
		logger.Warn("ignoring unknown disabled tools",
			"unknown", strings.Join(unknown, ", "),
			"known", strings.Join(mcp.AllToolNames(), ", "))
	}

	s := store.New(cfg.DocsDir)

	// CLI mode: known subcommand
	if isCLIMode() {
		app := newCLIApp(s, cfg)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if len(os.Args) >= 2 && isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'docstash --help' for usage.\n")
		os.Exit(1)
	}

	// The content summary is built once here and stays fixed for the
	// lifetime of the server, even if documents change on disk.
	summary := store.BuildSummary(s, cfg.PreviewChars)
	logger.Info("starting MCP server", "docs_dir", cfg.DocsDir, "version", Version)

	// MCP server mode (default)
	if err := mcp.Run(s, cfg, logger, summary, Version); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
