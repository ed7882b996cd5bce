package mcp

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/oklog/ulid/v2"

	"github.com/localstash/docstash/internal/config"
	"github.com/localstash/docstash/internal/errors"
	"github.com/localstash/docstash/internal/ops"
	"github.com/localstash/docstash/internal/store"
)

// Fixed responses for expected conditions. These reach the calling agent
// as plain text results, not protocol errors, so it can recover on its own.
const (
	MsgFileNotFound      = "File not found."
	MsgUnsupportedFormat = "Unsupported file format."
	MsgNoRelevantContent = "No relevant content found."
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	store   *store.Store
	cfg     *config.Config
	logger  *log.Logger
	runner  ops.Runner // nil outside tests; Capture falls back to the real binary
	summary string
}

// NewHandlers creates a new Handlers instance. summary is the startup
// content summary, frozen for the lifetime of the process.
func NewHandlers(s *store.Store, cfg *config.Config, logger *log.Logger, summary string) *Handlers {
	return &Handlers{store: s, cfg: cfg, logger: logger, summary: summary}
}

// Request types for each tool

// CheckRequest represents the arguments for check_local_data.
type CheckRequest struct {
	Query string `json:"query"`
}

// ReadRequest represents the arguments for read_document.
type ReadRequest struct {
	Filename string `json:"filename"`
}

// SearchRequest represents the arguments for search_document.
type SearchRequest struct {
	Filename string `json:"filename"`
	Query    string `json:"query"`
}

// SaveRequest represents the arguments for save_to_document.
type SaveRequest struct {
	Data string `json:"data"`
}

// CaptureRequest represents the arguments for capture_camera_image.
type CaptureRequest struct {
	CameraIndex int `json:"camera_index,omitempty"`
}

// Handler implementations

// HandleCheck handles the check_local_data tool call.
func (h *Handlers) HandleCheck(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := h.invocation("check_local_data")

	input, err := decode[CheckRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Check(h.store, ops.CheckInput{Query: input.Query})
	if err != nil {
		h.logger.Error("retrieval failed", "invocation", id, "err", err)
		return errorResult(err), nil
	}

	h.logger.Debug("retrieval done", "invocation", id, "bytes", len(result.Result))
	return mcp.NewToolResultText(result.Result), nil
}

// HandleList handles the list_documents tool call.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.invocation("list_documents")

	result, err := ops.List(h.store)
	if err != nil {
		return errorResult(err), nil
	}

	filenames := result.Filenames
	if len(filenames) == 0 {
		filenames = []string{"No documents found."}
	}
	return successResult(filenames)
}

// HandleRead handles the read_document tool call.
func (h *Handlers) HandleRead(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := h.invocation("read_document")

	input, err := decode[ReadRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Read(h.store, ops.ReadInput{Filename: input.Filename})
	switch {
	case errors.Is(err, errors.ErrNotFound):
		return mcp.NewToolResultText(MsgFileNotFound), nil
	case errors.Is(err, errors.ErrUnsupportedFormat):
		return mcp.NewToolResultText(MsgUnsupportedFormat), nil
	case err != nil:
		h.logger.Error("read failed", "invocation", id, "filename", input.Filename, "err", err)
		return errorResult(err), nil
	}

	return mcp.NewToolResultText(result.Content), nil
}

// HandleSearch handles the search_document tool call.
func (h *Handlers) HandleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := h.invocation("search_document")

	input, err := decode[SearchRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Search(h.store, h.cfg, ops.SearchInput{
		Filename: input.Filename,
		Query:    input.Query,
	})
	switch {
	case errors.Is(err, errors.ErrNotFound):
		return mcp.NewToolResultText(MsgFileNotFound), nil
	case errors.Is(err, errors.ErrUnsupportedFormat):
		return mcp.NewToolResultText(MsgUnsupportedFormat), nil
	case err != nil:
		h.logger.Error("search failed", "invocation", id, "filename", input.Filename, "err", err)
		return errorResult(err), nil
	}

	if len(result.Lines) == 0 {
		return mcp.NewToolResultText(MsgNoRelevantContent), nil
	}
	return mcp.NewToolResultText(strings.Join(result.Lines, "\n")), nil
}

// HandleSave handles the save_to_document tool call.
func (h *Handlers) HandleSave(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := h.invocation("save_to_document")

	input, err := decode[SaveRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Save(h.cfg, ops.SaveInput{Data: input.Data})
	if err != nil {
		// Save failures are reported as readable text so the agent can
		// relay them; the store itself is still healthy.
		if sErr, ok := stashError(err); ok && sErr.Code != errors.ErrInternal {
			h.logger.Warn("save rejected", "invocation", id, "code", sErr.Code)
			return mcp.NewToolResultText(fmt.Sprintf("Could not save: %s", sErr.Message)), nil
		}
		h.logger.Error("save failed", "invocation", id, "err", err)
		return errorResult(err), nil
	}

	h.logger.Info("record saved", "invocation", id, "file", result.File)
	return mcp.NewToolResultText(fmt.Sprintf("Data saved to %s.", result.File)), nil
}

// HandleCapture handles the capture_camera_image tool call.
func (h *Handlers) HandleCapture(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := h.invocation("capture_camera_image")

	input, err := decode[CaptureRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Capture(ctx, h.cfg, h.runner, ops.CaptureInput{CameraIndex: input.CameraIndex})
	if err != nil {
		h.logger.Error("capture failed", "invocation", id, "camera", input.CameraIndex, "err", err)
		return errorResult(err), nil
	}

	h.logger.Info("image captured", "invocation", id, "path", result.Path, "bytes", len(result.Data))
	encoded := base64.StdEncoding.EncodeToString(result.Data)
	return mcp.NewToolResultImage(fmt.Sprintf("Image captured and saved to %s.", result.Path), encoded, result.MIMEType), nil
}

// invocation assigns a ULID to one tool call for log correlation and
// logs the call.
func (h *Handlers) invocation(tool string) string {
	id := ulid.Make().String()
	h.logger.Debug("tool called", "tool", tool, "invocation", id)
	return id
}

// Result helpers

// stashError unwraps err to a *StashError if possible.
func stashError(err error) (*errors.StashError, bool) {
	sErr, ok := err.(*errors.StashError)
	return sErr, ok
}

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Note: Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if sErr, ok := stashError(err); ok {
		errorObj := map[string]any{
			"code":    sErr.Code,
			"message": sErr.Message,
			"status":  sErr.Status,
		}
		if sErr.Code != errors.ErrInternal && sErr.Details != nil {
			errorObj["details"] = sErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
