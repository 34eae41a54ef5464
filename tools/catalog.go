package tools

import "github.com/roundtable-dev/roundtable/agent"

// Spec describes one built-in tool for catalogs and exports.
type Spec struct {
	Name        string                     `json:"name"`
	Category    string                     `json:"category"`
	Description string                     `json:"description"`
	Params      map[string]agent.ParamType `json:"parameters"`
}

// Catalog lists every built-in tool with its category and parameter shape.
func Catalog() []Spec {
	entries := []struct {
		category string
		tool     *agent.Tool
	}{
		{"math", AddTool()},
		{"math", MultiplyTool()},
		{"math", DivideTool()},
		{"math", CalculateExpressionTool()},
		{"analysis", AnalyzeDataTool()},
		{"analysis", FindPatternsTool()},
		{"analysis", PredictTrendTool()},
		{"task_management", BreakDownTaskTool()},
		{"task_management", PrioritizeTasksTool()},
		{"simulation", SimulateProcessTool()},
		{"information", SearchKnowledgeBaseTool(nil)},
		{"information", ExtractInformationTool()},
	}

	specs := make([]Spec, len(entries))
	for i, e := range entries {
		specs[i] = Spec{
			Name:        e.tool.Name,
			Category:    e.category,
			Description: e.tool.Description,
			Params:      e.tool.Params,
		}
	}
	return specs
}
