package usecase

import (
	"context"
	"strings"

	"rebuy/internal/domain/entity"
	"rebuy/internal/domain/repository"
	"rebuy/pkg/errors"
)

type FeedbackUseCase struct {
	feedbackRepo repository.FeedbackRepository
	userRepo     repository.UserRepository
}

func NewFeedbackUseCase(feedbackRepo repository.FeedbackRepository, userRepo repository.UserRepository) *FeedbackUseCase {
	return &FeedbackUseCase{
		feedbackRepo: feedbackRepo,
		userRepo:     userRepo,
	}
}

func (uc *FeedbackUseCase) Create(ctx context.Context, userID string, rating int, message string) (*entity.Feedback, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	feedback := &entity.Feedback{
		UserID:   userID,
		UserName: strings.TrimSpace(user.FirstName + " " + user.LastName),
		Rating:   rating,
		Message:  message,
	}

	if err := uc.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, err
	}

	return feedback, nil
}

func (uc *FeedbackUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Feedback, int64, error) {
	return uc.feedbackRepo.List(ctx, limit, offset)
}

func (uc *FeedbackUseCase) Update(ctx context.Context, userID, id string, rating int, message string) (*entity.Feedback, error) {
	feedback, err := uc.feedbackRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if feedback.UserID != userID {
		return nil, errors.Forbidden("Feedback belongs to another user", nil)
	}

	feedback.Rating = rating
	feedback.Message = message

	if err := uc.feedbackRepo.Update(ctx, feedback); err != nil {
		return nil, err
	}

	return feedback, nil
}

// Delete is allowed for the owner or an admin caller.
func (uc *FeedbackUseCase) Delete(ctx context.Context, callerID string, isAdmin bool, id string) error {
	feedback, err := uc.feedbackRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && feedback.UserID != callerID {
		return errors.Forbidden("Not allowed to delete this feedback", nil)
	}

	return uc.feedbackRepo.Delete(ctx, id)
}
