package services

import (
	"testing"

	"anatomy-explorer-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestQuizService_UpsertAndRead(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(db)
	set := seedLabelSet(t, db, "head")
	id := uuid.NewString()

	input := QuizInput{
		Name:     "nerves",
		LabelSet: set.ID,
		Shuffle:  true,
		Questions: []QuestionInput{
			{QuestionType: 0, TextPrompt: "Find the eye", LabelID: ptr(int64(7)), ShowRegions: ptr(true)},
			{QuestionType: 1, TextPrompt: "Name this", TextAnswer: ptr("eye")},
		},
	}
	_, err := svc.Upsert(id, input)
	require.NoError(t, err)

	got, err := svc.GetByUUID(id)
	require.NoError(t, err)
	assert.Equal(t, id, *got.UUID)
	assert.Equal(t, "nerves", got.Name)
	assert.Equal(t, set.ID, got.LabelSet)
	assert.True(t, got.Shuffle)
	require.Len(t, got.Questions, 2)

	assert.Equal(t, "Find the eye", got.Questions[0].TextPrompt)
	assert.Equal(t, int64(7), *got.Questions[0].LabelID)
	assert.True(t, *got.Questions[0].ShowRegions)
	assert.Nil(t, got.Questions[0].TextAnswer)

	assert.Equal(t, int16(1), got.Questions[1].QuestionType)
	assert.Equal(t, "eye", *got.Questions[1].TextAnswer)
	assert.False(t, *got.Questions[1].ShowRegions, "null showRegions is stored as 0")
	assert.Nil(t, got.Questions[1].LabelID)

	var row models.Quiz
	require.NoError(t, db.Where("uuid = ?", id).First(&row).Error)
	assert.Equal(t, int16(1), row.Shuffle)

	byID, err := svc.GetByID(row.ID)
	require.NoError(t, err)
	assert.Equal(t, got, byID)
}

func TestQuizService_UpsertReplacesQuestions(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(db)
	set := seedLabelSet(t, db, "head")
	id := uuid.NewString()

	_, err := svc.Upsert(id, QuizInput{Name: "q", LabelSet: set.ID, Questions: []QuestionInput{
		{TextPrompt: "a"}, {TextPrompt: "b"},
	}})
	require.NoError(t, err)

	_, err = svc.Upsert(id, QuizInput{Name: "q2", LabelSet: set.ID, Questions: []QuestionInput{
		{TextPrompt: "c"},
	}})
	require.NoError(t, err)

	var questions []models.Question
	require.NoError(t, db.Find(&questions).Error)
	require.Len(t, questions, 1)
	assert.Equal(t, "c", questions[0].TextPrompt)
}

func TestQuizService_MissingLabelSetWritesNothing(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(db)
	id := uuid.NewString()

	_, err := svc.Upsert(id, QuizInput{Name: "q", LabelSet: 9999, Questions: []QuestionInput{{TextPrompt: "a"}}})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetByUUID(id)
	assert.ErrorIs(t, err, ErrNotFound)

	var quizzes, questions int64
	require.NoError(t, db.Model(&models.Quiz{}).Count(&quizzes).Error)
	require.NoError(t, db.Model(&models.Question{}).Count(&questions).Error)
	assert.Zero(t, quizzes)
	assert.Zero(t, questions)
}

func TestQuizService_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(db)
	set := seedLabelSet(t, db, "head")
	id := uuid.NewString()

	_, err := svc.Upsert(id, QuizInput{Name: "q", LabelSet: set.ID, Questions: []QuestionInput{{TextPrompt: "a"}}})
	require.NoError(t, err)
	quiz, err := svc.GetByUUID(id)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.UserQuiz{UserID: 1, QuizID: *quiz.ID}).Error)

	require.NoError(t, svc.Delete(id))

	var questions, members int64
	require.NoError(t, db.Model(&models.Question{}).Count(&questions).Error)
	require.NoError(t, db.Model(&models.UserQuiz{}).Count(&members).Error)
	assert.Zero(t, questions)
	assert.Zero(t, members)

	assert.ErrorIs(t, svc.Delete(id), ErrNotFound)
}
