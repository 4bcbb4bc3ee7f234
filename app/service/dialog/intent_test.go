package dialog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuleClassifier(t *testing.T) {
	classifier := RuleClassifier{}
	ctx := context.Background()

	followUps := []string{
		"what about his passing?",
		"How many goals did he score",
		"is he any good",
		"compare him to last season",
		"any dribbles?",
	}
	for _, text := range followUps {
		assert.Equal(t, IntentFollowUp, classifier.Classify(ctx, text), "input %q", text)
	}

	newSearches := []string{
		"Lionel Messi",
		"show me Jordan Smith",
		"whatever",
		"done",
	}
	for _, text := range newSearches {
		assert.Equal(t, IntentNewSearch, classifier.Classify(ctx, text), "input %q", text)
	}
}
