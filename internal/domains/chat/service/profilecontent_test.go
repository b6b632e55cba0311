package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	profilemodel "skillax-backend/internal/domains/profile/model"
)

func TestProfileContentParsesPlainJSON(t *testing.T) {
	provider := &fakeProvider{reply: `{"bio":"A bio.","linkedin_headline":"A headline","course_recommendation":"AI-Powered Marketing"}`}
	gen := NewProfileContentGenerator(provider)

	bio, headline, course, err := gen.ProfileContent(context.Background(), &profilemodel.StudentProfile{
		FullName:   "Anjali Nair",
		TargetRole: "SEO Specialist",
	})
	require.NoError(t, err)
	assert.Equal(t, "A bio.", bio)
	assert.Equal(t, "A headline", headline)
	assert.Equal(t, "AI-Powered Marketing", course)
}

func TestProfileContentStripsCodeFence(t *testing.T) {
	provider := &fakeProvider{reply: "```json\n{\"bio\":\"Fenced bio.\",\"linkedin_headline\":\"h\",\"course_recommendation\":\"c\"}\n```"}
	gen := NewProfileContentGenerator(provider)

	bio, _, _, err := gen.ProfileContent(context.Background(), &profilemodel.StudentProfile{})
	require.NoError(t, err)
	assert.Equal(t, "Fenced bio.", bio)
}

func TestProfileContentRejectsNonJSON(t *testing.T) {
	provider := &fakeProvider{reply: "Sure! Here is a bio for you."}
	gen := NewProfileContentGenerator(provider)

	_, _, _, err := gen.ProfileContent(context.Background(), &profilemodel.StudentProfile{})
	require.Error(t, err)
}
