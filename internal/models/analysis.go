package models

// Analysis is the structured result of a journal analysis. This shape is
// the wire contract with the analysis service; the field names match the
// JSON it returns.
type Analysis struct {
	Mood        string   `json:"mood"`
	Emotions    []string `json:"emotions"`
	Summary     string   `json:"summary"`
	Suggestions []string `json:"suggestions"`
}
