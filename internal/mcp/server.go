package mcp

import (
	"context"
	"time"

	"sitegantt/internal/config"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

// Server exposes the timeline engine as MCP tools.
type Server struct {
	cfg   *config.AppConfig
	now   func() time.Time
	inner *mcp.Server
}

// NewServer creates a new MCP server with every tool registered.
func NewServer(cfg *config.AppConfig, version string) *Server {
	s := &Server{
		cfg: cfg,
		now: time.Now,
		inner: mcp.NewServer(&mcp.Implementation{
			Name:    "sitegantt",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

// Start runs the MCP loop over stdio until the client disconnects or ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	log.Info().Msg("MCP Server starting Stdio loop")
	return s.inner.Run(ctx, &mcp.StdioTransport{})
}
