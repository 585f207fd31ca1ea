package schedule

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sitegantt/internal/timeline"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// maxConcurrentLoads bounds LoadAll's parallel file reads.
const maxConcurrentLoads = 8

// Decode parses a snapshot document. format is "json" or "yaml"; anything else sniffs the content.
func Decode(data []byte, format string) (ProjectDTO, error) {
	var dto ProjectDTO
	switch strings.ToLower(format) {
	case "json":
		if err := json.Unmarshal(data, &dto); err != nil {
			return ProjectDTO{}, fmt.Errorf("error parsing JSON snapshot: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &dto); err != nil {
			return ProjectDTO{}, fmt.Errorf("error parsing YAML snapshot: %w", err)
		}
	default:
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && trimmed[0] == '{' {
			return Decode(data, "json")
		}
		return Decode(data, "yaml")
	}
	return dto, nil
}

// LoadDTO reads a snapshot file, choosing the decoder from its extension.
func LoadDTO(path string) (ProjectDTO, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ProjectDTO{}, fmt.Errorf("error reading snapshot file: %w", err)
	}
	dto, err := Decode(data, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return ProjectDTO{}, fmt.Errorf("%s: %w", path, err)
	}
	return dto, nil
}

// Load reads a snapshot file and maps it into a timeline.Project.
func Load(path string) (timeline.Project, error) {
	dto, err := LoadDTO(path)
	if err != nil {
		return timeline.Project{}, err
	}
	p := MapProject(dto)
	log.Debug().
		Str("path", path).
		Str("project", p.ID).
		Int("milestones", len(p.Milestones)).
		Int("tasks", len(p.AllTasks())).
		Msg("Loaded schedule snapshot")
	return p, nil
}

// LoadAll loads several snapshot files concurrently. Results keep the order of paths; the first
// failure cancels the remaining loads.
func LoadAll(ctx context.Context, paths []string) ([]timeline.Project, error) {
	projects := make([]timeline.Project, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := Load(path)
			if err != nil {
				return err
			}
			projects[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return projects, nil
}

// Encode renders a snapshot as YAML, the format cmd/mockgen writes.
func Encode(dto ProjectDTO) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(dto); err != nil {
		return nil, fmt.Errorf("error encoding snapshot: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
