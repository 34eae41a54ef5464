package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchKnowledgeBase(t *testing.T) {
	t.Run("key match outranks value match", func(t *testing.T) {
		results := SearchKnowledgeBase("agent", nil)
		require.NotZero(t, results.Count)

		assert.Equal(t, "agent", results.Results[0].Key)
		assert.Equal(t, 0.9, results.Results[0].Relevance)
		for _, r := range results.Results[1:] {
			assert.LessOrEqual(t, r.Relevance, results.Results[0].Relevance)
		}
	})

	t.Run("search is case-insensitive", func(t *testing.T) {
		upper := SearchKnowledgeBase("AGENT", nil)
		lower := SearchKnowledgeBase("agent", nil)
		assert.Equal(t, lower.Count, upper.Count)
	})

	t.Run("no hits", func(t *testing.T) {
		results := SearchKnowledgeBase("zzz-nothing", nil)
		assert.Zero(t, results.Count)
		assert.Empty(t, results.Results)
	})

	t.Run("custom knowledge base", func(t *testing.T) {
		kb := map[string]string{"alpha": "first letter", "beta": "second letter"}
		results := SearchKnowledgeBase("letter", kb)
		require.Equal(t, 2, results.Count)
		assert.Equal(t, "alpha", results.Results[0].Key, "ties are ordered by key")
		assert.Equal(t, 0.7, results.Results[0].Relevance)
	})
}

func TestExtractInformation(t *testing.T) {
	text := "Agents send messages. An agent owns a queue; the queue is FIFO."
	ex := ExtractInformation(text, []string{"agent", "queue", "graph"})

	assert.Equal(t, len(text), ex.TextLength)
	assert.Equal(t, 2, ex.KeywordsFound)
	assert.Equal(t, KeywordHit{Found: true, Count: 2}, ex.Extracted["agent"])
	assert.Equal(t, KeywordHit{Found: true, Count: 2}, ex.Extracted["queue"])
	assert.Equal(t, KeywordHit{Found: false, Count: 0}, ex.Extracted["graph"])
}
