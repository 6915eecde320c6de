package models

// Course is one scored, credit-weighted entry contributing to the GPA.
type Course struct {
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Credit int     `json:"credit"`
}

// Snapshot is the persisted form state. It is always written as a whole.
type Snapshot struct {
	Name    *string  // nil when never saved
	Courses []Course // empty when absent or unreadable
	Result  *string  // rendered result markup, nil when never saved
}

// Empty reports whether nothing was restored.
func (s Snapshot) Empty() bool {
	return s.Name == nil && len(s.Courses) == 0 && s.Result == nil
}

// StudentData is the request body shared by both remote endpoints.
type StudentData struct {
	Name    string   `json:"name"`
	Courses []Course `json:"courses"`
}

// GPAResult is the compute endpoint's answer.
type GPAResult struct {
	GPA           float64 `json:"gpa"`
	ClassOfDegree string  `json:"class_of_degree"`
}
