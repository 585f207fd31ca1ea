package mcp

import (
	"context"

	"sitegantt/internal/schedule"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

// ScheduleArgs is the common input of every tool: a snapshot plus the caller's clock.
type ScheduleArgs struct {
	SnapshotPath string               `json:"snapshot_path,omitempty" jsonschema:"Path to a YAML or JSON schedule snapshot file. Either this or 'project' is required."`
	Project      *schedule.ProjectDTO `json:"project,omitempty" jsonschema:"Inline project snapshot with milestones and tasks. Dates are ISO 8601 strings."`
	Today        string               `json:"today,omitempty" jsonschema:"Reference date (YYYY-MM-DD) used for delays and the today marker. Default: the server's current date."`
	WeekStart    string               `json:"week_start,omitempty" jsonschema:"First day of the week for the weekly preview. Default: server configuration."`
}

type toolHandler func(args ScheduleArgs) (interface{}, error)

func (s *Server) registerTools() {
	schema := scheduleArgsSchema()

	s.addTool("timeline_layout",
		"Lay out every milestone and task of a project against the full-project window. Returns bar geometry in day units "+
			"(offset_days, width_days, clamped_left/right), grid ticks and the today marker offset.",
		schema, s.handleTimelineLayout)
	s.addTool("timeline_week",
		"Weekly preview: the 7-day window containing 'today', the tasks overlapping it and their bar geometry.",
		schema, s.handleTimelineWeek)
	s.addTool("schedule_health",
		"Schedule health: completed / on-track / delayed task counts, total delay days, per-milestone health and per-task delay info. "+
			"Completed tasks are never reported as delayed.",
		schema, s.handleScheduleHealth)
	s.addTool("timeline_mermaid",
		"Render the project as a Mermaid gantt chart plus a health pie chart (markdown).",
		schema, s.handleTimelineMermaid)
}

func (s *Server) addTool(name, description string, schema *jsonschema.Schema, h toolHandler) {
	tool := &mcp.Tool{Name: name, Description: description}
	if schema != nil {
		tool.InputSchema = schema
	}
	mcp.AddTool(s.inner, tool, func(ctx context.Context, req *mcp.CallToolRequest, args ScheduleArgs) (*mcp.CallToolResult, any, error) {
		log.Debug().Str("tool", name).Str("snapshot", args.SnapshotPath).Msg("Tool call")
		data, err := h(args)
		if err != nil {
			log.Warn().Err(err).Str("tool", name).Msg("Tool call failed")
			return &mcp.CallToolResult{
				IsError: true,
				Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
			}, nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: formatResult(data)}},
		}, nil, nil
	})
}

// scheduleArgsSchema derives the input schema from ScheduleArgs and adds the enum the struct
// tags cannot express. A nil result lets the SDK infer the schema itself.
func scheduleArgsSchema() *jsonschema.Schema {
	schema, err := jsonschema.For[ScheduleArgs](nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to derive tool input schema")
		return nil
	}
	if ws, ok := schema.Properties["week_start"]; ok {
		ws.Enum = []any{"sunday", "monday"}
	}
	return schema
}
