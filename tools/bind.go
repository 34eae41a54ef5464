package tools

import (
	"fmt"

	"github.com/roundtable-dev/roundtable/agent"
)

// AddTool exposes Add as an agent tool over parameters x and y.
func AddTool() *agent.Tool {
	return &agent.Tool{
		Name:        "add",
		Description: "Add two numbers",
		Params: map[string]agent.ParamType{
			"x": agent.ParamNumber,
			"y": agent.ParamNumber,
		},
		Fn: func(args agent.Args) (any, error) {
			return Add(args["x"].(float64), args["y"].(float64)), nil
		},
	}
}

// MultiplyTool exposes Multiply as an agent tool.
func MultiplyTool() *agent.Tool {
	return &agent.Tool{
		Name:        "multiply",
		Description: "Multiply two numbers",
		Params: map[string]agent.ParamType{
			"x": agent.ParamNumber,
			"y": agent.ParamNumber,
		},
		Fn: func(args agent.Args) (any, error) {
			return Multiply(args["x"].(float64), args["y"].(float64)), nil
		},
	}
}

// DivideTool exposes Divide as an agent tool.
func DivideTool() *agent.Tool {
	return &agent.Tool{
		Name:        "divide",
		Description: "Divide two numbers",
		Params: map[string]agent.ParamType{
			"x": agent.ParamNumber,
			"y": agent.ParamNumber,
		},
		Fn: func(args agent.Args) (any, error) {
			return Divide(args["x"].(float64), args["y"].(float64))
		},
	}
}

// CalculateExpressionTool exposes EvalExpression as an agent tool.
func CalculateExpressionTool() *agent.Tool {
	return &agent.Tool{
		Name:        "calculate_expression",
		Description: "Evaluate a constant arithmetic expression",
		Params: map[string]agent.ParamType{
			"expression": agent.ParamString,
		},
		Fn: func(args agent.Args) (any, error) {
			return EvalExpression(args["expression"].(string))
		},
	}
}

// AnalyzeDataTool exposes AnalyzeData as an agent tool.
func AnalyzeDataTool() *agent.Tool {
	return &agent.Tool{
		Name:        "analyze_data",
		Description: "Analyze numerical data for statistics",
		Params: map[string]agent.ParamType{
			"data": agent.ParamList,
		},
		Fn: func(args agent.Args) (any, error) {
			data, err := agent.Floats(args["data"])
			if err != nil {
				return nil, fmt.Errorf("data: %w", err)
			}
			return AnalyzeData(data)
		},
	}
}

// FindPatternsTool exposes FindPatterns as an agent tool.
func FindPatternsTool() *agent.Tool {
	return &agent.Tool{
		Name:        "find_patterns",
		Description: "Find patterns in data",
		Params: map[string]agent.ParamType{
			"data": agent.ParamList,
		},
		Fn: func(args agent.Args) (any, error) {
			data, err := agent.Floats(args["data"])
			if err != nil {
				return nil, fmt.Errorf("data: %w", err)
			}
			return FindPatterns(data)
		},
	}
}

// PredictTrendTool exposes PredictTrend as an agent tool.
func PredictTrendTool() *agent.Tool {
	return &agent.Tool{
		Name:        "predict_trend",
		Description: "Predict future trend from historical data",
		Params: map[string]agent.ParamType{
			"historical_data": agent.ParamList,
		},
		Fn: func(args agent.Args) (any, error) {
			data, err := agent.Floats(args["historical_data"])
			if err != nil {
				return nil, fmt.Errorf("historical_data: %w", err)
			}
			return PredictTrend(data)
		},
	}
}

// BreakDownTaskTool exposes BreakDownTask as an agent tool.
func BreakDownTaskTool() *agent.Tool {
	return &agent.Tool{
		Name:        "break_down_task",
		Description: "Break down complex tasks into subtasks",
		Params: map[string]agent.ParamType{
			"task_description": agent.ParamString,
			"num_subtasks":     agent.ParamNumber,
		},
		Fn: func(args agent.Args) (any, error) {
			return BreakDownTask(
				args["task_description"].(string),
				int(args["num_subtasks"].(float64)),
			), nil
		},
	}
}

// PrioritizeTasksTool exposes PrioritizeTasks as an agent tool.
func PrioritizeTasksTool() *agent.Tool {
	return &agent.Tool{
		Name:        "prioritize_tasks",
		Description: "Prioritize tasks by importance",
		Params: map[string]agent.ParamType{
			"tasks": agent.ParamList,
		},
		Fn: func(args agent.Args) (any, error) {
			tasks, err := agent.Strings(args["tasks"])
			if err != nil {
				return nil, fmt.Errorf("tasks: %w", err)
			}
			return PrioritizeTasks(tasks), nil
		},
	}
}

// SimulateProcessTool exposes SimulateProcess as an agent tool.
func SimulateProcessTool() *agent.Tool {
	return &agent.Tool{
		Name:        "simulate_process",
		Description: "Simulate a growth process over time",
		Params: map[string]agent.ParamType{
			"steps":         agent.ParamNumber,
			"initial_value": agent.ParamNumber,
			"growth_rate":   agent.ParamNumber,
		},
		Fn: func(args agent.Args) (any, error) {
			return SimulateProcess(
				int(args["steps"].(float64)),
				args["initial_value"].(float64),
				args["growth_rate"].(float64),
			)
		},
	}
}

// SearchKnowledgeBaseTool exposes SearchKnowledgeBase over the given
// knowledge base; a nil base uses the default.
func SearchKnowledgeBaseTool(kb map[string]string) *agent.Tool {
	return &agent.Tool{
		Name:        "search_knowledge_base",
		Description: "Search for information in the knowledge base",
		Params: map[string]agent.ParamType{
			"query": agent.ParamString,
		},
		Fn: func(args agent.Args) (any, error) {
			return SearchKnowledgeBase(args["query"].(string), kb), nil
		},
	}
}

// ExtractInformationTool exposes ExtractInformation as an agent tool.
func ExtractInformationTool() *agent.Tool {
	return &agent.Tool{
		Name:        "extract_information",
		Description: "Extract specific information from text",
		Params: map[string]agent.ParamType{
			"text":     agent.ParamString,
			"keywords": agent.ParamList,
		},
		Fn: func(args agent.Args) (any, error) {
			keywords, err := agent.Strings(args["keywords"])
			if err != nil {
				return nil, fmt.Errorf("keywords: %w", err)
			}
			return ExtractInformation(args["text"].(string), keywords), nil
		},
	}
}
