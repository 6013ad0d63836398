package model

// InsightKind classifies the tone of an insight.
type InsightKind string

const (
	// InsightPositive highlights a strength.
	InsightPositive InsightKind = "positive"
	// InsightWarning flags something hurting the score.
	InsightWarning InsightKind = "warning"
	// InsightTip suggests an improvement.
	InsightTip InsightKind = "tip"
)

// Insight is a qualitative explanation of the current score.
type Insight struct {
	Kind     InsightKind `json:"kind"`
	Message  string      `json:"message"`
	Category string      `json:"category,omitempty"`
}
