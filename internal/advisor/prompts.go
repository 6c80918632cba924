package advisor

import "advisor/internal/services"

// reasonsSystemPrompt drives the first generation stage. Its output is
// fed verbatim into the advice stage as context.
const reasonsSystemPrompt = "Based on the user's question, list five clear and constructive reasons explaining why, " +
	"in this scenario, it may make sense to consider non-trading financial products such as " +
	"funds or bonds.\n" +
	"Rewrite the user's question as a title and respond in bullet points.\n" +
	"Example: If the user asks 'Can I invest in funds using foreign currency?', your title should be " +
	"'Can I invest in funds using foreign currency? Here are five reasons worth considering:'"

// One advice template per category. Advice and Mixed share the
// consultant template, matching the original fallback behavior.
const (
	knowledgeAdvicePrompt = "You are a financial education expert. Use a concise and professional tone to explain the concept.\n" +
		"Give three bullet points, then add one final sentence explaining how this concept relates to funds or bonds."

	personalizedAdvicePrompt = "You are a financial advisor. Based on the context below, provide personalized guidance.\n" +
		"Offer three sample asset allocation mixes: Conservative, Balanced, Aggressive (use percentages).\n" +
		"Explain who each mix fits. Clearly emphasize: this is not financial advice."

	consultantAdvicePrompt = "You are a professional investment consultant. Based on the reasons below, provide practical guidance.\n" +
		"Use a calm, professional tone. Include suggested asset directions, example allocation ratios, and suitable profiles.\n" +
		"End with a disclaimer: For educational purposes only."
)

// AdviceSystemPrompt returns the fixed instruction template for a
// category. Every category resolves to a template; unknown values fall
// back to the consultant template like Mixed does.
func AdviceSystemPrompt(category Category) string {
	switch category {
	case CategoryKnowledge:
		return knowledgeAdvicePrompt
	case CategoryPersonalized:
		return personalizedAdvicePrompt
	default:
		return consultantAdvicePrompt
	}
}

// BuildReasonsPrompt assembles the message sequence for the reasons
// stage: fixed system instruction plus the raw user question.
func BuildReasonsPrompt(question string) []services.ChatMessage {
	return []services.ChatMessage{
		{Role: services.ChatMessageRoleSystem, Content: reasonsSystemPrompt},
		{Role: services.ChatMessageRoleUser, Content: question},
	}
}

// BuildAdvicePrompt assembles the message sequence for the advice
// stage. The category selects the system instruction; the reasons text
// from the first stage is passed through verbatim as the user message.
func BuildAdvicePrompt(context string, category Category) []services.ChatMessage {
	return []services.ChatMessage{
		{Role: services.ChatMessageRoleSystem, Content: AdviceSystemPrompt(category)},
		{Role: services.ChatMessageRoleUser, Content: context},
	}
}
