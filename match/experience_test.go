package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateExperienceYears(t *testing.T) {
	testCases := []struct {
		name    string
		entries []string
		want    int
	}{
		{
			name:    "year span",
			entries: []string{"Frontend Dev (2019-2023)"},
			want:    4,
		},
		{
			name:    "explicit years phrase",
			entries: []string{"Consultant for 3 years"},
			want:    3,
		},
		{
			name:    "fallback counts one year per entry",
			entries: []string{"Barista", "Tutor"},
			want:    2,
		},
		{
			name:    "span wins over years phrase in the same entry",
			entries: []string{"Engineer (2020-2023), 10 years in the industry"},
			want:    3,
		},
		{
			name:    "mixed entries accumulate",
			entries: []string{"Frontend Dev (2019-2023)", "Consultant for 3 years", "Intern at Acme"},
			want:    8,
		},
		{
			name:    "span separated by words",
			entries: []string{"Software Engineer at X from 2018 to 2022"},
			want:    4,
		},
		{
			name:    "reversed span contributes nothing",
			entries: []string{"Contract work 2023 through 2019"},
			want:    0,
		},
		{
			name:    "no entries",
			entries: nil,
			want:    0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EstimateExperienceYears(tc.entries))
		})
	}
}
