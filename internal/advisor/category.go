package advisor

// Category buckets a user question to select the advice response style.
type Category string

const (
	// CategoryKnowledge covers definition and comparison questions
	// ("what is", "difference", "vs").
	CategoryKnowledge Category = "Knowledge"

	// CategoryAdvice covers general recommendation requests
	// ("how to invest", "what should i buy").
	CategoryAdvice Category = "Advice"

	// CategoryPersonalized covers suitability questions tied to the
	// asker's own situation ("for me", "my current", "i have").
	CategoryPersonalized Category = "Personalized"

	// CategoryMixed is the fallback when no keyword group matches.
	CategoryMixed Category = "Mixed"
)

// ValidCategories maps category strings to their typed values.
var ValidCategories = map[string]Category{
	"Knowledge":    CategoryKnowledge,
	"Advice":       CategoryAdvice,
	"Personalized": CategoryPersonalized,
	"Mixed":        CategoryMixed,
}

// IsValidCategory returns true if the string is a recognized category.
func IsValidCategory(s string) bool {
	_, ok := ValidCategories[s]
	return ok
}

func (c Category) String() string { return string(c) }
