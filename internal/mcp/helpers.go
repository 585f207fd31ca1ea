package mcp

import (
	"encoding/json"

	"sitegantt/internal/timeline"
)

func formatResult(data interface{}) string {
	out, _ := json.MarshalIndent(data, "", "  ")
	return string(out)
}

func onlyDelayed(infos []timeline.DelayInfo) []timeline.DelayInfo {
	out := make([]timeline.DelayInfo, 0, len(infos))
	for _, d := range infos {
		if d.IsDelayed {
			out = append(out, d)
		}
	}
	return out
}
