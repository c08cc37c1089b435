package mcpserver

import (
	"context"
	"io"
	stdlog "log"

	"github.com/labstack/gommon/log"
	"github.com/mark3labs/mcp-go/server"
)

// ServeStdio reads newline-delimited JSON-RPC messages from in and writes
// responses to out. It returns nil on EOF once queued tool calls have been
// answered, or ctx.Err() when ctx is done first.
func ServeStdio(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stdio := server.NewStdioServer(s)
	stdio.SetErrorLogger(stdlog.New(log.Output(), "stdio: ", stdlog.LstdFlags))
	return stdio.Listen(ctx, in, out)
}
