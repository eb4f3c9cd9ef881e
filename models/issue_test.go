package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendFeedbackRunningAverage(t *testing.T) {
	issue := &Issue{Status: StatusResolved}

	issue.AppendFeedback(Comment{Author: "Asha", Text: "fixed fast", Rating: 4})
	require.NotNil(t, issue.Rating)
	assert.InDelta(t, 4.0, *issue.Rating, 1e-9, "first comment sets the average")

	issue.AppendFeedback(Comment{Author: "Ravi", Text: "took a while", Rating: 2})
	assert.InDelta(t, 3.0, *issue.Rating, 1e-9)
	assert.Len(t, issue.Comments, 2)

	issue.AppendFeedback(Comment{Author: "Meena", Text: "good work", Rating: 5})
	assert.InDelta(t, (4.0+2.0+5.0)/3.0, *issue.Rating, 1e-9)
}

func TestAppendFeedbackPreservesOrder(t *testing.T) {
	issue := &Issue{Status: StatusResolved}
	for _, name := range []string{"a", "b", "c"} {
		issue.AppendFeedback(Comment{Author: name, Text: name, Rating: 3})
	}
	require.Len(t, issue.Comments, 3)
	assert.Equal(t, "a", issue.Comments[0].Author)
	assert.Equal(t, "c", issue.Comments[2].Author)
}
