package tools

import (
	"sort"
	"strings"
)

// SearchResult is one knowledge base hit.
type SearchResult struct {
	Key       string  `json:"key"`
	Value     string  `json:"value"`
	Relevance float64 `json:"relevance"`
}

// SearchResults holds the hits for a query.
type SearchResults struct {
	Query   string         `json:"query"`
	Count   int            `json:"result_count"`
	Results []SearchResult `json:"results"`
}

// DefaultKnowledgeBase returns the seeded knowledge base used by the
// knowledge agent.
func DefaultKnowledgeBase() map[string]string {
	return map[string]string{
		"agent":         "An autonomous system that perceives, thinks, communicates, and acts",
		"tool":          "A capability or function that enables agents to perform tasks",
		"graph":         "A structure representing relationships between agents and tasks",
		"workflow":      "A coordinated sequence of steps to accomplish goals",
		"multiagent":    "Multiple agents working together to solve complex problems",
		"communication": "Message passing between agents for coordination",
		"coordination":  "Mechanism to synchronize actions between multiple agents",
	}
}

// SearchKnowledgeBase finds entries whose key or value contains the query,
// case-insensitively. Key matches score higher than value matches. A nil
// knowledge base falls back to the default one. Results are ordered by
// relevance, then key, so output is deterministic.
func SearchKnowledgeBase(query string, kb map[string]string) *SearchResults {
	if kb == nil {
		kb = DefaultKnowledgeBase()
	}

	q := strings.ToLower(query)
	var results []SearchResult
	for key, value := range kb {
		keyHit := strings.Contains(strings.ToLower(key), q)
		valueHit := strings.Contains(strings.ToLower(value), q)
		if !keyHit && !valueHit {
			continue
		}
		relevance := 0.7
		if keyHit {
			relevance = 0.9
		}
		results = append(results, SearchResult{Key: key, Value: value, Relevance: relevance})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Relevance != results[j].Relevance {
			return results[i].Relevance > results[j].Relevance
		}
		return results[i].Key < results[j].Key
	})

	return &SearchResults{
		Query:   query,
		Count:   len(results),
		Results: results,
	}
}

// KeywordHit records how often one keyword appeared.
type KeywordHit struct {
	Found bool `json:"found"`
	Count int  `json:"count"`
}

// Extraction summarizes keyword occurrences in a text.
type Extraction struct {
	TextLength    int                   `json:"text_length"`
	KeywordsFound int                   `json:"keywords_found"`
	Extracted     map[string]KeywordHit `json:"extracted"`
}

// ExtractInformation counts case-insensitive occurrences of each keyword in
// the text.
func ExtractInformation(text string, keywords []string) *Extraction {
	lower := strings.ToLower(text)
	extracted := make(map[string]KeywordHit, len(keywords))
	found := 0
	for _, keyword := range keywords {
		count := strings.Count(lower, strings.ToLower(keyword))
		if count > 0 {
			found++
		}
		extracted[keyword] = KeywordHit{Found: count > 0, Count: count}
	}

	return &Extraction{
		TextLength:    len(text),
		KeywordsFound: found,
		Extracted:     extracted,
	}
}
