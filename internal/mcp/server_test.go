package mcp

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"sitegantt/internal/config"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_InMemoryRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s, path := newTestServer(t, &config.AppConfig{WeekStart: time.Monday})

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := s.inner.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	tools, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	require.NoError(t, err)
	names := make([]string, 0, len(tools.Tools))
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"timeline_layout", "timeline_week", "schedule_health", "timeline_mermaid"}, names)

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "schedule_health",
		Arguments: map[string]any{"snapshot_path": path, "today": "2025-01-15"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Len(t, res.Content, 1)

	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	var payload struct {
		Health struct {
			Total   int `json:"total"`
			Delayed int `json:"delayed"`
		} `json:"health"`
	}
	require.NoError(t, json.Unmarshal([]byte(text.Text), &payload))
	assert.Equal(t, 3, payload.Health.Total)
	assert.Equal(t, 1, payload.Health.Delayed)

	failed, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "schedule_health",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	assert.True(t, failed.IsError)
}
