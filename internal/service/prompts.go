package service

var journalPrompts = []string{
	"What were the highlights of your day?",
	"What challenges did you face today?",
	"How are you feeling emotionally?",
	"What are you grateful for today?",
	"What steps can you take to improve your well-being?",
	"Reflect on a positive interaction you had today.",
	"What is something you're looking forward to?",
	"Describe a moment when you felt at peace today.",
	"What are your goals for tomorrow?",
	"How can you show yourself more compassion?",
}

// NextJournalPrompt returns the prompt after current, wrapping around.
// An unknown or empty current yields the first prompt.
func NextJournalPrompt(current string) string {
	for i, p := range journalPrompts {
		if p == current {
			return journalPrompts[(i+1)%len(journalPrompts)]
		}
	}
	return journalPrompts[0]
}
