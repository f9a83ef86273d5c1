package model

// Summary is a point-in-time report of a result set.
type Summary struct {
	Source       string          `json:"source" yaml:"source"`
	Count        int             `json:"count" yaml:"count"`
	TotalCredits uint64          `json:"total_credits" yaml:"total_credits"`
	GPA          float64         `json:"gpa" yaml:"gpa"`
	Results      []SubjectResult `json:"results" yaml:"results"`
}
