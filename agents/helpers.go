package agents

import "github.com/roundtable-dev/roundtable/agent"

// defName resolves the agent name from a definition, falling back to the
// conventional role name.
func defName(def agent.Def, fallback string) string {
	if def.Name != "" {
		return def.Name
	}
	return fallback
}

// stringField reads a string from a message payload with a default.
func stringField(data map[string]any, key, def string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return def
}

// numberField reads a numeric payload field with a default, accepting any
// numeric kind.
func numberField(data map[string]any, key string, def float64) float64 {
	switch v := data[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return def
}

// listField reads a list payload field; missing or non-list values yield nil.
func listField(data map[string]any, key string) []any {
	if v, ok := data[key].([]any); ok {
		return v
	}
	return nil
}
