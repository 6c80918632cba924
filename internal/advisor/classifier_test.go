package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     Category
	}{
		{"index fund definition", "What is an index fund?", CategoryKnowledge},
		{"comparison", "ETF vs mutual fund, which is safer?", CategoryKnowledge},
		{"purchase advice", "I want to invest, what should I buy?", CategoryAdvice},
		{"recommendation", "Can you recommend a bond fund?", CategoryAdvice},
		{"suitability", "Is it suitable for me given my current savings?", CategoryPersonalized},
		{"own situation", "Given my situation, should I hold more cash?", CategoryPersonalized},
		{"savings mention", "I have 50000 in savings, should I worry about inflation?", CategoryPersonalized},
		{"no triggers", "Tell me about the weather", CategoryMixed},
		{"empty input", "", CategoryMixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.question))
		})
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, CategoryKnowledge, Classify("WHAT IS a bond?"))
	assert.Equal(t, CategoryKnowledge, Classify("wHaT iS a bond?"))
	assert.Equal(t, CategoryAdvice, Classify("RECOMMEND something"))
}

func TestClassify_PriorityOrder(t *testing.T) {
	// Knowledge beats Advice and Personalized when triggers overlap.
	assert.Equal(t, CategoryKnowledge, Classify("What is the difference? I want to invest for my situation"))
	// Advice beats Personalized: "what should i buy" wins over "i want".
	assert.Equal(t, CategoryAdvice, Classify("I want to invest, what should I buy?"))
	// Personalized only matches when nothing higher does.
	assert.Equal(t, CategoryPersonalized, Classify("Does this fit my situation?"))
}

func TestClassify_Deterministic(t *testing.T) {
	question := "Is it suitable for me? I have some savings."
	first := Classify(question)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(question))
	}
}
