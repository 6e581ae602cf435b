package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleStringSliceUnmarshal(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want FlexibleStringSlice
	}{
		{"array", `["React","CSS"]`, FlexibleStringSlice{"React", "CSS"}},
		{"single string", `"React"`, FlexibleStringSlice{"React"}},
		{"empty string", `""`, FlexibleStringSlice{}},
		{"unexpected type falls back to empty", `42`, FlexibleStringSlice{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got FlexibleStringSlice
			require.NoError(t, json.Unmarshal([]byte(tc.in), &got))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCandidateProfileAcceptsLooseSkillShapes(t *testing.T) {
	payload := `{
		"name": "Sam",
		"skills": "React",
		"experience": ["Frontend Dev (2019-2023)"],
		"preferences": {"salary": {"min": 60000, "max": 90000}, "remote": true}
	}`

	var profile CandidateProfile
	require.NoError(t, json.Unmarshal([]byte(payload), &profile))

	assert.Equal(t, FlexibleStringSlice{"React"}, profile.Skills)
	assert.Equal(t, FlexibleStringSlice{"Frontend Dev (2019-2023)"}, profile.Experience)
	assert.True(t, profile.Preferences.Remote)
	assert.True(t, profile.Preferences.Salary.Stated())
}

func TestSalaryPreferenceStated(t *testing.T) {
	assert.False(t, SalaryPreference{}.Stated())
	assert.True(t, SalaryPreference{Min: 1}.Stated())
	assert.True(t, SalaryPreference{Max: 90000}.Stated())
}
