package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advisor/internal/services"
)

func TestAdviceSystemPrompt_PerCategory(t *testing.T) {
	assert.Equal(t, knowledgeAdvicePrompt, AdviceSystemPrompt(CategoryKnowledge))
	assert.Equal(t, personalizedAdvicePrompt, AdviceSystemPrompt(CategoryPersonalized))
	assert.Equal(t, consultantAdvicePrompt, AdviceSystemPrompt(CategoryAdvice))
	assert.Equal(t, consultantAdvicePrompt, AdviceSystemPrompt(CategoryMixed))
}

func TestBuildAdvicePrompt_EmbedsTemplateAndContext(t *testing.T) {
	context := "Here are five reasons worth considering:\n- one\n- two"

	msgs := BuildAdvicePrompt(context, CategoryKnowledge)
	require.Len(t, msgs, 2)

	assert.Equal(t, services.ChatMessageRoleSystem, msgs[0].Role)
	assert.Equal(t, knowledgeAdvicePrompt, msgs[0].Content)

	assert.Equal(t, services.ChatMessageRoleUser, msgs[1].Role)
	assert.Equal(t, context, msgs[1].Content, "context must be passed through verbatim")
}

func TestBuildReasonsPrompt(t *testing.T) {
	question := "Can I invest in funds using foreign currency?"

	msgs := BuildReasonsPrompt(question)
	require.Len(t, msgs, 2)

	assert.Equal(t, services.ChatMessageRoleSystem, msgs[0].Role)
	assert.Equal(t, reasonsSystemPrompt, msgs[0].Content)
	assert.Contains(t, msgs[0].Content, "five clear and constructive reasons")

	assert.Equal(t, services.ChatMessageRoleUser, msgs[1].Role)
	assert.Equal(t, question, msgs[1].Content)
}
