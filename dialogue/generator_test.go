package dialogue

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentbridge/backend/models"
)

func seededGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

func sampleJob() *models.JobPosting {
	return &models.JobPosting{
		Title:       "Frontend Developer",
		Company:     "Acme",
		Description: "React work",
		Location:    "Berlin",
		SalaryRange: "$50,000 - $80,000",
	}
}

func sampleCandidate() *models.CandidateProfile {
	return &models.CandidateProfile{
		Name:       "Sam",
		Skills:     models.FlexibleStringSlice{"React", "CSS"},
		Experience: models.FlexibleStringSlice{"Frontend Dev (2019-2023)"},
		Preferences: models.CandidatePreferences{
			Salary: models.SalaryPreference{Min: 60000, Max: 90000},
		},
	}
}

func allIntents() []Intent {
	return []Intent{
		IntentExperience, IntentSkills, IntentSalary, IntentWeakness,
		IntentStrength, IntentWhyInterested, IntentTeamwork, IntentProject,
		IntentAvailability, IntentCandidateQuestion, IntentGeneric,
	}
}

func TestGenerateNeverEmpty(t *testing.T) {
	g := seededGenerator(1)

	for _, intent := range allIntents() {
		t.Run(string(intent), func(t *testing.T) {
			// fully populated inputs
			assert.NotEmpty(t, g.Generate(intent, sampleJob(), sampleCandidate(), nil))

			// fully empty inputs must still yield a complete sentence
			assert.NotEmpty(t, g.Generate(intent, &models.JobPosting{}, &models.CandidateProfile{}, nil))
		})
	}
}

func TestGeneratePoolMembership(t *testing.T) {
	g := seededGenerator(7)

	pools := map[Intent][]string{
		IntentWeakness:          weaknessTemplates,
		IntentStrength:          strengthTemplates,
		IntentTeamwork:          teamworkTemplates,
		IntentProject:           projectTemplates,
		IntentAvailability:      availabilityTemplates,
		IntentCandidateQuestion: candidateQuestionTemplates,
	}

	for intent, pool := range pools {
		for i := 0; i < 20; i++ {
			reply := g.Generate(intent, sampleJob(), sampleCandidate(), nil)
			assert.Contains(t, pool, reply)
		}
	}
}

func TestGenerateSameSeedSameSequence(t *testing.T) {
	first := seededGenerator(42)
	second := seededGenerator(42)

	for i := 0; i < 30; i++ {
		for _, intent := range allIntents() {
			require.Equal(t,
				first.Generate(intent, sampleJob(), sampleCandidate(), nil),
				second.Generate(intent, sampleJob(), sampleCandidate(), nil))
		}
	}
}

func TestGenerateSalarySlotFill(t *testing.T) {
	g := seededGenerator(1)

	reply := g.Generate(IntentSalary, sampleJob(), sampleCandidate(), nil)
	assert.Contains(t, reply, "$60,000")
	assert.Contains(t, reply, "$90,000")

	// no stated preference falls back to a flexible answer
	fallback := g.Generate(IntentSalary, sampleJob(), &models.CandidateProfile{}, nil)
	assert.Contains(t, fallback, "flexible")
}

func TestGenerateSkillsSlotFill(t *testing.T) {
	g := seededGenerator(1)

	reply := g.Generate(IntentSkills, sampleJob(), sampleCandidate(), nil)
	assert.Contains(t, reply, "React and CSS")

	fallback := g.Generate(IntentSkills, sampleJob(), &models.CandidateProfile{}, nil)
	assert.NotEmpty(t, fallback)
	assert.NotContains(t, fallback, "React")
}

func TestGenerateExperienceSlotFill(t *testing.T) {
	g := seededGenerator(1)

	reply := g.Generate(IntentExperience, sampleJob(), sampleCandidate(), nil)
	assert.Contains(t, reply, "Frontend Dev (2019-2023)")
}

func TestGenerateWhyInterestedSlotFill(t *testing.T) {
	g := seededGenerator(1)

	reply := g.Generate(IntentWhyInterested, sampleJob(), sampleCandidate(), nil)
	assert.Contains(t, reply, "Frontend Developer")
	assert.Contains(t, reply, "Acme")
}

func TestGenerateDoesNotMutateHistory(t *testing.T) {
	g := seededGenerator(1)

	history := []models.ConversationTurn{
		{Role: models.RoleUser, Content: "Tell me about your experience"},
		{Role: models.RoleAssistant, Content: "Gladly."},
	}
	snapshot := make([]models.ConversationTurn, len(history))
	copy(snapshot, history)

	g.Generate(IntentExperience, sampleJob(), sampleCandidate(), history)
	g.Generate(IntentGeneric, sampleJob(), sampleCandidate(), history)

	require.Equal(t, snapshot, history)
}
