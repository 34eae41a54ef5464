package tools

import (
	"fmt"
	"sort"
	"strings"
)

// Subtask is one unit of a task breakdown.
type Subtask struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	Priority      float64 `json:"priority"`
	EstimatedTime string  `json:"estimated_time"`
}

// Breakdown is the result of decomposing a task.
type Breakdown struct {
	OriginalTask  string    `json:"original_task"`
	Subtasks      []Subtask `json:"subtasks"`
	TotalSubtasks int       `json:"total_subtasks"`
}

var breakdownPhases = []string{"analyze", "prepare", "execute", "review", "finalize", "optimize"}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// BreakDownTask decomposes a task description into up to numSubtasks phased
// subtasks with descending priority. A non-positive numSubtasks defaults
// to 3.
func BreakDownTask(description string, numSubtasks int) *Breakdown {
	if numSubtasks <= 0 {
		numSubtasks = 3
	}
	if numSubtasks > len(breakdownPhases) {
		numSubtasks = len(breakdownPhases)
	}

	short := description
	if len(short) > 30 {
		short = short[:30] + "..."
	}

	subtasks := make([]Subtask, numSubtasks)
	for i := 0; i < numSubtasks; i++ {
		subtasks[i] = Subtask{
			ID:            i + 1,
			Title:         fmt.Sprintf("%s - Part of %s", capitalize(breakdownPhases[i]), short),
			Priority:      float64(numSubtasks-i) / float64(numSubtasks),
			EstimatedTime: fmt.Sprintf("%d minutes", (i+1)*10),
		}
	}

	return &Breakdown{
		OriginalTask:  description,
		Subtasks:      subtasks,
		TotalSubtasks: numSubtasks,
	}
}

// ScoredTask is a task with an urgency score.
type ScoredTask struct {
	Task     string `json:"task"`
	Priority int    `json:"priority"`
}

// Prioritized is an urgency-ordered task list.
type Prioritized struct {
	TotalTasks int          `json:"total_tasks"`
	Tasks      []ScoredTask `json:"prioritized_tasks"`
}

// urgencyKeywords maps urgency markers to scores; first match wins.
var urgencyKeywords = []struct {
	keyword string
	score   int
}{
	{"urgent", 5},
	{"critical", 5},
	{"important", 4},
	{"high", 4},
	{"medium", 3},
	{"low", 2},
	{"minor", 1},
}

// PrioritizeTasks scores each task by urgency keywords and returns them in
// descending priority order. Ties keep their input order.
func PrioritizeTasks(tasks []string) *Prioritized {
	scored := make([]ScoredTask, len(tasks))
	for i, task := range tasks {
		score := 2
		lower := strings.ToLower(task)
		for _, u := range urgencyKeywords {
			if strings.Contains(lower, u.keyword) {
				if u.score > score {
					score = u.score
				}
				break
			}
		}
		scored[i] = ScoredTask{Task: task, Priority: score}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Priority > scored[j].Priority
	})

	return &Prioritized{
		TotalTasks: len(tasks),
		Tasks:      scored,
	}
}
