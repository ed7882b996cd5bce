package mcp

import (
	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/localstash/docstash/internal/config"
	"github.com/localstash/docstash/internal/store"
)

// toolEntry pairs a tool definition with a handler factory. Definitions
// are built per-handlers because check_local_data embeds the startup
// content summary in its description.
type toolEntry struct {
	def     func(h *Handlers) mcp.Tool
	handler func(h *Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"check_local_data": {
		def:     func(h *Handlers) mcp.Tool { return checkToolDef(h.summary) },
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCheck },
	},
	"list_documents": {
		def:     func(h *Handlers) mcp.Tool { return listToolDef },
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleList },
	},
	"read_document": {
		def:     func(h *Handlers) mcp.Tool { return readToolDef },
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleRead },
	},
	"search_document": {
		def:     func(h *Handlers) mcp.Tool { return searchToolDef },
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSearch },
	},
	"save_to_document": {
		def:     func(h *Handlers) mcp.Tool { return saveToolDef },
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSave },
	},
	"capture_camera_image": {
		def:     func(h *Handlers) mcp.Tool { return captureToolDef },
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCapture },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// NewServer creates a new MCP server with docstash tools and resources
// registered. Tools listed in cfg.DisabledTools are excluded. summary is
// the startup content summary; it goes into the server instructions and
// the check_local_data description verbatim.
func NewServer(s *store.Store, cfg *config.Config, logger *log.Logger, summary, version string) *server.MCPServer {
	srv := server.NewMCPServer(
		"docstash",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithInstructions(
			"Local document knowledge base. Call check_local_data before "+
				"answering from your own knowledge.\n\n"+summary),
	)

	h := NewHandlers(s, cfg, logger, summary)

	disabled := make(map[string]bool, len(cfg.DisabledTools))
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		srv.AddTool(entry.def(h), entry.handler(h))
	}

	registerResources(srv, h)

	return srv
}

// Run starts the MCP server using stdio transport.
func Run(s *store.Store, cfg *config.Config, logger *log.Logger, summary, version string) error {
	srv := NewServer(s, cfg, logger, summary, version)
	return server.ServeStdio(srv)
}
