package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/localstash/docstash/internal/config"
	"github.com/localstash/docstash/internal/errors"
	"github.com/localstash/docstash/internal/ops"
	"github.com/localstash/docstash/internal/store"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(s *store.Store, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "docstash",
		Usage:   "Local document knowledge base",
		Version: Version,
		Commands: []*cli.Command{
			listCmd(s),
			readCmd(s),
			searchCmd(s, cfg),
			checkCmd(s),
			saveCmd(cfg),
			captureCmd(cfg),
			summaryCmd(s, cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// listCmd creates the list command.
func listCmd(s *store.Store) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List every file in the document store",
		Action: func(c *cli.Context) error {
			output, err := ops.List(s)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// readCmd creates the read command.
func readCmd(s *store.Store) *cli.Command {
	return &cli.Command{
		Name:      "read",
		Usage:     "Print the extracted text of one document",
		ArgsUsage: "<filename>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("filename is required"))
			}

			output, err := ops.Read(s, ops.ReadInput{Filename: c.Args().First()})
			if err != nil {
				return outputError(err)
			}

			fmt.Println(output.Content)
			return nil
		},
	}
}

// searchCmd creates the search command.
func searchCmd(s *store.Store, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Find matching lines in one document",
		ArgsUsage: "<filename> <query>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return outputError(errors.NewInvalidRequest("filename and query are required"))
			}

			output, err := ops.Search(s, cfg, ops.SearchInput{
				Filename: c.Args().Get(0),
				Query:    strings.Join(c.Args().Slice()[1:], " "),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// checkCmd creates the check command.
func checkCmd(s *store.Store) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Retrieve relevant lines from every document",
		ArgsUsage: "<query>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("query is required"))
			}

			output, err := ops.Check(s, ops.CheckInput{
				Query: strings.Join(c.Args().Slice(), " "),
			})
			if err != nil {
				return outputError(err)
			}

			fmt.Println(output.Result)
			return nil
		},
	}
}

// saveCmd creates the save command.
func saveCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "save",
		Usage: "Append a record to the notes file (reads data from stdin)",
		Action: func(c *cli.Context) error {
			// Require stdin input
			if !stdinHasData() {
				return outputError(errors.NewInvalidRequest("data must be piped via stdin"))
			}

			data, err := readStdin()
			if err != nil {
				return outputError(errors.NewInternal(err))
			}

			output, err := ops.Save(cfg, ops.SaveInput{Data: data})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// captureCmd creates the capture command.
func captureCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "capture",
		Usage: "Capture a still image from the system camera",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "camera", Aliases: []string{"c"}, Value: 0, Usage: "Camera device index"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Capture(context.Background(), cfg, nil, ops.CaptureInput{
				CameraIndex: c.Int("camera"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// summaryCmd creates the summary command.
func summaryCmd(s *store.Store, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "summary",
		Usage: "Print the content summary an MCP client would see at startup",
		Action: func(c *cli.Context) error {
			fmt.Println(store.BuildSummary(s, cfg.PreviewChars))
			return nil
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if sErr, ok := err.(*errors.StashError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", sErr.Code, sErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads all content from stdin.
func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
