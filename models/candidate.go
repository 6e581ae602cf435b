package models

import "encoding/json"

// FlexibleStringSlice can unmarshal from either a string or []string.
// Frontend clients are inconsistent about sending single values as
// arrays, so profile list fields accept both shapes.
type FlexibleStringSlice []string

func (f *FlexibleStringSlice) UnmarshalJSON(data []byte) error {
	// Try to unmarshal as []string first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*f = arr
		return nil
	}

	// Try to unmarshal as string
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if str != "" {
			*f = []string{str}
		} else {
			*f = []string{}
		}
		return nil
	}

	// If both fail, return empty slice
	*f = []string{}
	return nil
}

// CandidateProfile is the candidate's self-description: skills, free-text
// experience entries, and preferences. Supplied whole on every request and
// owned by the candidate.
type CandidateProfile struct {
	Name        string               `json:"name,omitempty"`
	Skills      FlexibleStringSlice  `json:"skills"`
	Experience  FlexibleStringSlice  `json:"experience"` // e.g. "Software Engineer at X (2020-2023)"
	Preferences CandidatePreferences `json:"preferences"`
}

// CandidatePreferences holds the candidate's stated job preferences.
type CandidatePreferences struct {
	JobTypes  []string         `json:"jobTypes,omitempty"`
	Locations []string         `json:"locations,omitempty"`
	Salary    SalaryPreference `json:"salary"`
	Remote    bool             `json:"remote,omitempty"`
}

// SalaryPreference is the candidate's desired salary interval.
// Min and Max both zero means no stated preference.
type SalaryPreference struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Stated reports whether the candidate expressed any salary preference.
func (s SalaryPreference) Stated() bool {
	return s.Min != 0 || s.Max != 0
}
