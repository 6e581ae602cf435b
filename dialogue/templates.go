package dialogue

// Template pools for the intents whose answers do not depend on job or
// candidate data. One entry is picked uniformly at random per reply.
// All pools are read-only.

var weaknessTemplates = []string{
	"I sometimes take on too much myself before delegating, and I've been actively working on handing tasks off earlier.",
	"I can get absorbed in perfecting details. I've learned to timebox polish work so it never puts a deadline at risk.",
	"Public speaking used to make me nervous, so I volunteer for demos and presentations to keep improving.",
}

var strengthTemplates = []string{
	"I'd say my biggest strength is learning new tools quickly and putting them to productive use within days, not weeks.",
	"I'm persistent with hard problems. I break them into small steps and keep steady progress visible to the team.",
	"Colleagues tell me I'm dependable: when I commit to a date, the work lands on that date.",
	"I communicate clearly with both technical and non-technical people, which keeps projects from drifting.",
}

var teamworkTemplates = []string{
	"I work best in teams with open communication. I ask questions early, share progress often, and give credit freely.",
	"I enjoy pairing and code reviews. Some of my best work came from building on a teammate's half-formed idea.",
	"I try to be the person who unblocks others. A short conversation at the right moment saves days of rework.",
}

var projectTemplates = []string{
	"A project I'm proud of involved rescuing a delayed delivery: I re-scoped the work with the stakeholders and we shipped the core two weeks later.",
	"My favorite achievement was automating a manual weekly process down to a few minutes. The team still uses that tool today.",
	"I once led a small effort to clean up a legacy component nobody wanted to touch. Defect reports in that area dropped noticeably afterwards.",
}

var availabilityTemplates = []string{
	"I could start within two weeks of an offer.",
	"I'm available to start almost immediately, with just a few days' notice to wrap up current commitments.",
	"My notice period is one month, and I'm happy to plan a smooth handover in the meantime.",
}

var candidateQuestionTemplates = []string{
	"Yes - I'd love to hear how the team measures success in this role during the first six months.",
	"I do: could you tell me more about the day-to-day work and who I'd collaborate with most closely?",
	"One question: what does the growth path look like for someone joining in this position?",
}
