package config

// Layout constants.
const (
	// CourseNameWidth is the width of the course name input.
	CourseNameWidth = 28

	// NumberFieldWidth is the width of the score and credit inputs.
	NumberFieldWidth = 8

	// StudentNameWidth is the width of the student name input.
	StudentNameWidth = 40

	// MinViewWidth is the narrowest width the form lays out for.
	MinViewWidth = 40

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Input limits.
const (
	NameCharLimit   = 64
	ScoreCharLimit  = 6
	CreditCharLimit = 2
)
