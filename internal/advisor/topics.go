package advisor

import (
	"fmt"
	"math/rand"
	"sort"
)

// Preset topic question sets for the "not sure what to ask" buttons.
var questionSets = map[string][]string{
	"Funds": {
		"What is an index fund?",
		"Are funds suitable for long-term investing?",
		"How should a beginner choose a suitable fund?",
	},
	"Bonds": {
		"Is now a good time to invest in bonds?",
		"Are bonds less risky than stocks?",
		"What types of bonds are suitable for conservative investors?",
	},
	"Foreign Currency": {
		"Which is better: USD time deposit or USD bonds?",
		"Can I invest in funds using foreign currency?",
		"Will FX volatility affect foreign-currency funds?",
	},
	"Macro": {
		"With current economic uncertainty, how should I allocate assets?",
		"What investment themes are worth watching right now?",
		"Will inflation continue? How should I respond?",
	},
}

// Topics returns the preset topic names in stable order.
func Topics() []string {
	names := make([]string, 0, len(questionSets))
	for name := range questionSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TopicQuestions returns the canned questions for a topic.
func TopicQuestions(topic string) ([]string, error) {
	qs, ok := questionSets[topic]
	if !ok {
		return nil, fmt.Errorf("unknown topic: %q", topic)
	}
	return qs, nil
}

// RandomQuestion picks one of the canned questions for a topic.
func RandomQuestion(topic string) (string, error) {
	qs, err := TopicQuestions(topic)
	if err != nil {
		return "", err
	}
	return qs[rand.Intn(len(qs))], nil
}
