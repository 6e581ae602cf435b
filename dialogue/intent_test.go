package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyIntent(t *testing.T) {
	testCases := []struct {
		question string
		want     Intent
	}{
		{"Tell me about your experience", IntentExperience},
		{"What is your professional background?", IntentExperience},
		{"What technologies do you know?", IntentSkills},
		{"Which skills would you bring to the role?", IntentSkills},
		{"What are your salary expectations?", IntentSalary},
		{"How much does this job pay?", IntentSalary},
		{"What is your greatest weakness?", IntentWeakness},
		{"Describe a challenge you faced", IntentWeakness},
		{"What are you best at?", IntentStrength},
		{"Why do you want this job?", IntentWhyInterested},
		{"Do you prefer collaborating closely with others?", IntentTeamwork},
		{"Tell me about a project you're proud of", IntentProject},
		{"When can you start?", IntentAvailability},
		{"Do you have any questions for us?", IntentCandidateQuestion},
		{"Hello there", IntentGeneric},
		{"", IntentGeneric},
	}

	for _, tc := range testCases {
		t.Run(tc.question, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyIntent(tc.question))
		})
	}
}

func TestClassifyIntentPriorityOrder(t *testing.T) {
	// Salary outranks teamwork in the fixed priority order.
	assert.Equal(t, IntentSalary, ClassifyIntent("What about salary and will I work with a team?"))

	// Experience outranks everything below it.
	assert.Equal(t, IntentExperience, ClassifyIntent("Why is your experience relevant to this team?"))
}

func TestClassifyIntentIsDeterministic(t *testing.T) {
	question := "Tell me about your experience with teams"
	first := ClassifyIntent(question)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, ClassifyIntent(question))
	}
}
