package models

// Insight severities. Rule order, not severity, decides which insights
// survive the cut to four.
const (
	InsightTip     = "tip"
	InsightWarning = "warning"
	InsightSuccess = "success"
	InsightInfo    = "info"
)

// Insight is one advisory message generated from the user's care history.
type Insight struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	PlantID string `json:"plantId,omitempty"`
}
