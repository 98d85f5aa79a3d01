package model

import (
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// Score is the per-activity like counter. A zeroed row is created in the same
// transaction as its activity; rows are never deleted.
type Score struct {
	bun.BaseModel `bun:"activity_scores,alias:s"`

	ActivityID string `bun:"activity_id,pk" json:"activityId"`
	Score      int    `bun:"score" json:"score"`
}

// ScoreValue normalizes the two score shapes that exist in stored activity
// documents: older documents carry a scalar `score`, newer ones an array of
// `scores` entries. When entries are present they win over the scalar.
type ScoreValue struct {
	Score  null.Int `json:"score"`
	Scores []int    `json:"scores,omitempty"`
}

// ScalarScore wraps a plain counter value.
func ScalarScore(n int) ScoreValue {
	return ScoreValue{Score: null.IntFrom(int64(n))}
}

// ScoreEntries wraps a list of individual score entries.
func ScoreEntries(ns ...int) ScoreValue {
	return ScoreValue{Scores: ns}
}

// Total collapses the value to a single non-negative integer.
func (v ScoreValue) Total() int {
	if len(v.Scores) > 0 {
		total := 0
		for _, n := range v.Scores {
			total += n
		}
		return total
	}
	if v.Score.Valid {
		return int(v.Score.Int64)
	}
	return 0
}
