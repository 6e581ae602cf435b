package dialogue

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/talentbridge/backend/models"
	"github.com/talentbridge/backend/utils"
)

// Generator produces interview-style answers. The random source is
// injected so tests can pin template selection with a fixed seed; it is
// guarded by a mutex because request handlers call Generate concurrently.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator creates a generator from the given random source. A nil rng
// gets a time-seeded one.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Generate builds one answer for the classified intent. Data-dependent
// intents fill slots from the job and candidate, falling back to a generic
// but complete sentence when the relevant data is absent. The history
// argument exists for parity with a stateful dialogue system and is not
// consulted; the transcript belongs to the caller and is never mutated.
func (g *Generator) Generate(intent Intent, job *models.JobPosting, candidate *models.CandidateProfile, _ []models.ConversationTurn) string {
	switch intent {
	case IntentExperience:
		return experienceAnswer(candidate)
	case IntentSkills:
		return skillsAnswer(candidate)
	case IntentSalary:
		return salaryAnswer(candidate)
	case IntentWeakness:
		return g.pick(weaknessTemplates)
	case IntentStrength:
		return g.pick(strengthTemplates)
	case IntentWhyInterested:
		return interestAnswer(job)
	case IntentTeamwork:
		return g.pick(teamworkTemplates)
	case IntentProject:
		return g.pick(projectTemplates)
	case IntentAvailability:
		return g.pick(availabilityTemplates)
	case IntentCandidateQuestion:
		return g.pick(candidateQuestionTemplates)
	default:
		return genericAnswer(job)
	}
}

func (g *Generator) pick(pool []string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return pool[g.rng.Intn(len(pool))]
}

func experienceAnswer(candidate *models.CandidateProfile) string {
	entries := candidate.Experience
	if len(entries) == 0 {
		return "I've gathered broad practical experience across my career and I'm confident it prepares me well for this role."
	}
	if len(entries) == 1 {
		return fmt.Sprintf("My most relevant experience is as %s, which maps directly onto what this role needs.", entries[0])
	}
	return fmt.Sprintf("My background spans %d roles, including %s. Each one sharpened the skills this position calls for.",
		len(entries), utils.JoinWithAnd(entries))
}

func skillsAnswer(candidate *models.CandidateProfile) string {
	if len(candidate.Skills) == 0 {
		return "I pick up new technologies quickly, and I'm confident I can get productive with your stack in short order."
	}
	return fmt.Sprintf("My core skills are %s, and I keep them current with hands-on work.",
		utils.JoinWithAnd(candidate.Skills))
}

func salaryAnswer(candidate *models.CandidateProfile) string {
	pref := candidate.Preferences.Salary
	switch {
	case pref.Min > 0 && pref.Max > 0:
		return fmt.Sprintf("Based on my experience I'm targeting a range of $%s to $%s, though I'm open to discussing the full package.",
			utils.FormatAmount(pref.Min), utils.FormatAmount(pref.Max))
	case pref.Max > 0:
		return fmt.Sprintf("I'm looking for something up to around $%s, depending on the overall package.",
			utils.FormatAmount(pref.Max))
	case pref.Min > 0:
		return fmt.Sprintf("I'm looking for a base of at least $%s, though the whole offer matters to me.",
			utils.FormatAmount(pref.Min))
	default:
		return "I'm flexible on compensation and more focused on the role being the right fit. I'm happy to discuss a fair offer."
	}
}

func interestAnswer(job *models.JobPosting) string {
	switch {
	case job.Title != "" && job.Company != "":
		return fmt.Sprintf("The %s position at %s matches the direction I want my career to take, and the work described is exactly the kind I do best.",
			job.Title, job.Company)
	case job.Title != "":
		return fmt.Sprintf("I'm interested because the %s position lines up closely with my strengths and the kind of problems I enjoy solving.", job.Title)
	default:
		return "I'm interested because this opportunity lines up closely with my strengths and the kind of problems I enjoy solving."
	}
}

func genericAnswer(job *models.JobPosting) string {
	if job.Title == "" {
		return "That's a good question. I believe my background makes me a strong fit for this role, and I'm happy to go deeper on any area you'd like."
	}
	return fmt.Sprintf("That's a good question. I believe my background makes me a strong fit for the %s role, and I'm happy to go deeper on any area you'd like.", job.Title)
}
