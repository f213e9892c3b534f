package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"biofinder/internal/catalog"
	"biofinder/internal/logger"
	"biofinder/internal/presenter"
	"biofinder/internal/version"
)

// Server exposes the catalog's four query operations as MCP tools over
// stdio, for use by LLM assistants answering "which container do I
// pull" questions.
type Server struct {
	holder *catalog.Holder
	logger logger.Logger
	mcp    *mcp.Server
}

type findToolArgs struct {
	ToolName string `json:"tool_name" jsonschema:"Name of the bioinformatics tool to look up (fuzzy matching supported)"`
}

type searchArgs struct {
	Query string `json:"query" jsonschema:"Free-text description of the desired functionality, e.g. 'sequence alignment'"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum number of results (default 10)"`
}

type versionsArgs struct {
	ToolName string `json:"tool_name" jsonschema:"Name of the tool whose container versions to list"`
}

type listArgs struct {
	Limit int `json:"limit,omitempty" jsonschema:"Maximum number of tool IDs to return (default 50, negative for all)"`
}

// New builds the MCP server and registers the query tools.
func New(holder *catalog.Holder, searchLimit, listLimit int, log logger.Logger) *Server {
	s := &Server{
		holder: holder,
		logger: log,
		mcp: mcp.NewServer(&mcp.Implementation{
			Name:    "biofinder",
			Version: version.Version,
		}, nil),
	}

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "find_tool",
		Description: "Find a bioinformatics tool by name and return its metadata plus the newest available container image.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args findToolArgs) (*mcp.CallToolResult, any, error) {
		res, err := s.holder.Load().FindTool(args.ToolName)
		if err != nil {
			// Resolution failure is an answer, not a protocol fault.
			return textResult(err.Error()), nil, nil
		}
		return textResult(presenter.RenderToolResult(res)), res, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "search_by_function",
		Description: "Search tools by desired functionality (free text matched against descriptions, EDAM operations and topics).",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args searchArgs) (*mcp.CallToolResult, any, error) {
		limit := args.Limit
		if limit == 0 {
			limit = searchLimit
		}
		hits := s.holder.Load().SearchByFunction(args.Query, limit)
		return textResult(presenter.RenderSearchHits(args.Query, hits)), hits, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_container_versions",
		Description: "List every known container image version of a tool, newest first, with paths and sizes.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args versionsArgs) (*mcp.CallToolResult, any, error) {
		listing, err := s.holder.Load().ContainerVersions(args.ToolName)
		if err != nil {
			return textResult(err.Error()), nil, nil
		}
		return textResult(presenter.RenderVersionListing(listing)), listing, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "list_available_tools",
		Description: "List the IDs of all cataloged tools, alphabetically.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args listArgs) (*mcp.CallToolResult, any, error) {
		limit := args.Limit
		if limit == 0 {
			limit = listLimit
		}
		cat := s.holder.Load()
		ids := cat.ListTools(limit)
		return textResult(presenter.RenderToolList(ids, cat.ToolCount())), ids, nil
	})

	return s
}

// Run serves MCP over stdio until the context is canceled or the
// client disconnects. Logs must go to stderr; stdout belongs to the
// protocol.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("MCP server listening on stdio")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
