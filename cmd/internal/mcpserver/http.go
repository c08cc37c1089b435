package mcpserver

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/mark3labs/mcp-go/server"
)

const EndpointPath = "/mcp"

// HTTPServer serves the streamable HTTP transport on EndpointPath next to a
// health check. Sessions are issued on initialize and required afterwards.
type HTTPServer struct {
	echo *echo.Echo
}

func NewHTTPServer(s *server.MCPServer) *HTTPServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetOutput(os.Stderr)

	e.Use(middleware.Recover())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Output: os.Stderr}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowHeaders:  []string{echo.HeaderContentType, echo.HeaderAccept, server.HeaderKeySessionID},
		ExposeHeaders: []string{server.HeaderKeySessionID},
	}))

	transportLog := log.New("mcp")
	transportLog.SetOutput(os.Stderr)
	streamable := server.NewStreamableHTTPServer(s,
		server.WithEndpointPath(EndpointPath),
		server.WithStateful(true),
		server.WithLogger(transportLog),
	)

	e.GET("/health", handleHealth)
	e.Match([]string{http.MethodGet, http.MethodPost, http.MethodDelete}, EndpointPath, echo.WrapHandler(streamable))

	return &HTTPServer{echo: e}
}

func (h *HTTPServer) Handler() http.Handler { return h.echo }

// Start blocks serving on addr until Shutdown is called.
func (h *HTTPServer) Start(addr string) error {
	err := h.echo.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (h *HTTPServer) Shutdown(ctx context.Context) error {
	return h.echo.Shutdown(ctx)
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
