package models

// JobPosting represents a job listing as supplied by the caller.
// The engine never mutates it; ownership and persistence stay with
// the collaborating application.
type JobPosting struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	Location    string `json:"location"`
	SalaryRange string `json:"salaryRange"` // free text, e.g. "$50,000 - $80,000"
}

// JobRequirements is the structured view extracted from a job description.
// Derived fresh on every analysis call; never persisted.
type JobRequirements struct {
	Skills          []string `json:"skills"`          // lower-cased vocabulary hits
	ExperienceYears int      `json:"experienceYears"` // 0 when no figure detected
}
