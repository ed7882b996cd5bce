package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/localstash/docstash/internal/ops"
)

// Resource URIs. These expose the store to clients that browse resources
// instead of calling tools.
const (
	resourceListURI = "docs://documents/list"
	resourceAllURI  = "docs://documents/all"
)

// registerResources adds the document list and aggregate content resources.
func registerResources(srv *server.MCPServer, h *Handlers) {
	srv.AddResource(mcp.NewResource(
		resourceListURI,
		"Document list",
		mcp.WithResourceDescription("Names of every file in the local document store."),
		mcp.WithMIMEType("text/plain"),
	), h.readListResource)

	srv.AddResource(mcp.NewResource(
		resourceAllURI,
		"All document content",
		mcp.WithResourceDescription("Extracted text of every readable document, grouped by file."),
		mcp.WithMIMEType("text/plain"),
	), h.readAllResource)
}

func (h *Handlers) readListResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	result, err := ops.List(h.store)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("Available documents:")
	for _, name := range result.Filenames {
		fmt.Fprintf(&b, "\n  - %s", name)
	}
	if len(result.Filenames) == 0 {
		b.WriteString("\n  (none)")
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      resourceListURI,
			MIMEType: "text/plain",
			Text:     b.String(),
		},
	}, nil
}

func (h *Handlers) readAllResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	docs, err := h.store.ListSupported()
	if err != nil {
		return nil, err
	}

	blocks := make([]string, 0, len(docs))
	for _, doc := range docs {
		content, err := h.store.Read(doc.Name)
		if err != nil {
			blocks = append(blocks, fmt.Sprintf("── %s ──\n(could not read: %v)", doc.Name, err))
			continue
		}
		blocks = append(blocks, fmt.Sprintf("── %s ──\n%s", doc.Name, content))
	}

	text := strings.Join(blocks, "\n\n")
	if len(blocks) == 0 {
		text = "No documents currently stored."
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      resourceAllURI,
			MIMEType: "text/plain",
			Text:     text,
		},
	}, nil
}
