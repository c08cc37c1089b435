package mcpserver

import (
	"context"

	"github.com/labstack/gommon/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// batchingProtocolVersion is the only MCP revision that requires JSON-RPC
// batches. Clients asking for it are offered noBatchProtocolVersion instead.
const (
	batchingProtocolVersion = "2025-03-26"
	noBatchProtocolVersion  = "2025-06-18"
)

// New builds the tool server shared by the stdio and HTTP transports.
// Handler panics are recovered and reported as JSON-RPC errors.
func New(name, version string) *server.MCPServer {
	hooks := &server.Hooks{}
	hooks.AddAfterInitialize(func(_ context.Context, _ any, _ *mcp.InitializeRequest, result *mcp.InitializeResult) {
		if result.ProtocolVersion == batchingProtocolVersion {
			result.ProtocolVersion = noBatchProtocolVersion
		}
	})
	hooks.AddBeforeCallTool(func(_ context.Context, id any, req *mcp.CallToolRequest) {
		log.Debugf("tools/call %s (id %v)", req.Params.Name, id)
	})
	hooks.AddOnError(func(_ context.Context, id any, method mcp.MCPMethod, _ any, err error) {
		log.Warnf("%s (id %v) failed: %v", method, id, err)
	})

	return server.NewMCPServer(name, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithHooks(hooks),
	)
}
