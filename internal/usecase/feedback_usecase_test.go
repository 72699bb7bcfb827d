package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rebuy/internal/domain/entity"
	"rebuy/pkg/errors"
)

func feedbackFixture(t *testing.T) (*FeedbackUseCase, *fakeFeedbackRepo) {
	t.Helper()

	feedbackRepo := newFakeFeedbackRepo()
	userRepo := newFakeUserRepo()
	userRepo.users["user-1"] = &entity.User{ID: "user-1", FirstName: "Nimal", LastName: "Perera"}

	return NewFeedbackUseCase(feedbackRepo, userRepo), feedbackRepo
}

func TestFeedbackCreateSnapshotsUserName(t *testing.T) {
	uc, _ := feedbackFixture(t)

	feedback, err := uc.Create(context.Background(), "user-1", 4, "Great prices")
	require.NoError(t, err)

	assert.Equal(t, "Nimal Perera", feedback.UserName)
	assert.Equal(t, 4, feedback.Rating)
}

func TestFeedbackUpdateOwnerOnly(t *testing.T) {
	uc, _ := feedbackFixture(t)

	feedback, err := uc.Create(context.Background(), "user-1", 4, "Great prices")
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), "user-2", feedback.ID, 1, "edited")
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	updated, err := uc.Update(context.Background(), "user-1", feedback.ID, 5, "Even better now")
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
}

func TestFeedbackDeletePermissions(t *testing.T) {
	uc, feedbackRepo := feedbackFixture(t)

	feedback, err := uc.Create(context.Background(), "user-1", 4, "Great prices")
	require.NoError(t, err)

	// Another user cannot delete it.
	err = uc.Delete(context.Background(), "user-2", false, feedback.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	// An admin can, regardless of ownership.
	err = uc.Delete(context.Background(), "admin-1", true, feedback.ID)
	require.NoError(t, err)
	assert.Empty(t, feedbackRepo.entries)
}
