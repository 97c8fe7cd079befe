package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMembershipService_LabelSets(t *testing.T) {
	db := newTestDB(t)
	svc := NewMembershipService(db)
	set := seedLabelSet(t, db, "head")
	seedLabelSet(t, db, "unused")

	assert.ErrorIs(t, svc.AddLabelSet(1, uuid.NewString()), ErrNotFound)

	require.NoError(t, svc.AddLabelSet(1, set.UUID))
	err := svc.AddLabelSet(1, set.UUID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	items, err := svc.ListLabelSets(1)
	require.NoError(t, err)
	assert.Equal(t, []MemberItem{{ID: set.ID, UUID: set.UUID, Name: "head"}}, items)

	others, err := svc.ListLabelSets(2)
	require.NoError(t, err)
	assert.NotNil(t, others)
	assert.Empty(t, others)

	require.NoError(t, svc.RemoveLabelSet(1, set.UUID))
	assert.ErrorIs(t, svc.RemoveLabelSet(1, set.UUID), ErrNotFound)
	assert.ErrorIs(t, svc.RemoveLabelSet(1, uuid.NewString()), ErrNotFound)
}

func TestMembershipService_Quizzes(t *testing.T) {
	db := newTestDB(t)
	svc := NewMembershipService(db)
	set := seedLabelSet(t, db, "head")

	quizUUID := uuid.NewString()
	_, err := NewQuizService(db).Upsert(quizUUID, QuizInput{Name: "q", LabelSet: set.ID})
	require.NoError(t, err)

	require.NoError(t, svc.AddQuiz(5, quizUUID))
	require.NoError(t, svc.AddQuiz(6, quizUUID))

	items, err := svc.ListQuizzes(5)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, quizUUID, items[0].UUID)
	assert.Equal(t, "q", items[0].Name)

	require.NoError(t, svc.RemoveQuiz(5, quizUUID))
	assert.ErrorIs(t, svc.RemoveQuiz(5, quizUUID), ErrNotFound)

	items, err = svc.ListQuizzes(6)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
