package advisor

import "strings"

// Keyword groups checked in priority order: Knowledge > Advice >
// Personalized. The first group with a substring match wins; Mixed is
// the unconditional fallback. The Personalized and Advice lists are the
// union of the trigger variants that accumulated across revisions of
// the original prompt script; narrower variants are deprecated.
var (
	knowledgeTriggers = []string{
		"what is", "define", "definition", "difference", "compare", "vs", "versus",
	}
	adviceTriggers = []string{
		"how to invest", "what should i buy", "recommend", "suggest", "i want to invest",
	}
	personalizedTriggers = []string{
		"is it suitable", "for me", "for my situation", "my situation",
		"i have", "i am", "my current", "i want",
	}
)

// Classify assigns exactly one category to a question. It is a pure
// function of the question text: case-insensitive, total (empty input
// returns Mixed), and never fails.
func Classify(question string) Category {
	text := strings.ToLower(question)

	if containsAny(text, knowledgeTriggers) {
		return CategoryKnowledge
	}
	if containsAny(text, adviceTriggers) {
		return CategoryAdvice
	}
	if containsAny(text, personalizedTriggers) {
		return CategoryPersonalized
	}
	return CategoryMixed
}

func containsAny(text string, triggers []string) bool {
	for _, t := range triggers {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
