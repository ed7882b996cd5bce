package mcp

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool definitions. The check_local_data description embeds the startup
// content summary so the calling agent sees what is stored before it
// decides to call anything.

func checkToolDef(summary string) mcp.Tool {
	return mcp.NewTool("check_local_data",
		mcp.WithDescription(fmt.Sprintf(
			"ALWAYS call this tool FIRST, before answering from your own knowledge. "+
				"It scans every document in the local store for lines relevant to the "+
				"query and returns them grouped by source file. If a document has no "+
				"directly matching lines its full content is returned for review.\n\n%s",
			summary)),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The user's question or topic, used to pick out relevant lines."),
		),
	)
}

var listToolDef = mcp.NewTool("list_documents",
	mcp.WithDescription("List every file in the local document store, including files in formats that cannot be read."),
)

var readToolDef = mcp.NewTool("read_document",
	mcp.WithDescription("Read the full extracted text of one document (txt, pdf, or docx)."),
	mcp.WithString("filename",
		mcp.Required(),
		mcp.Description("Base name of the document, e.g. notes.txt."),
	),
)

var searchToolDef = mcp.NewTool("search_document",
	mcp.WithDescription("Find lines in one document that contain the query text (case-insensitive substring match)."),
	mcp.WithString("filename",
		mcp.Required(),
		mcp.Description("Base name of the document to search."),
	),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Text to look for."),
	),
)

var saveToolDef = mcp.NewTool("save_to_document",
	mcp.WithDescription("Append a record to the shared notes file. Pass tab-separated key/value lines; existing records are never modified."),
	mcp.WithString("data",
		mcp.Required(),
		mcp.Description("The record to append, e.g. \"Name\\tJohn Doe\"."),
	),
)

var captureToolDef = mcp.NewTool("capture_camera_image",
	mcp.WithDescription("Capture a single still image from the system camera and save it to the photos directory."),
	mcp.WithNumber("camera_index",
		mcp.Description("Camera device index. 0 is the default camera."),
	),
)
