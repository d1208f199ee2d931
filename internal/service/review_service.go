package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"wanderlust-backend/internal/domain"
	"wanderlust-backend/internal/repository/ports"
)

var (
	ErrReviewValidation    = errors.New("review validation failed")
	ErrReviewForbidden     = errors.New("only travelers with a completed stay can review")
	ErrReviewAlreadyExists = errors.New("review already exists for this destination")
)

// visitChecker reports whether a user finished a stay at a destination.
// Satisfied by BookingService.
type visitChecker interface {
	HasVisited(ctx context.Context, userID uuid.UUID, destinationID string) bool
}

type ReviewService struct {
	reviews      ports.ReviewRepository
	destinations ports.DestinationRepository
	profiles     ports.ProfileRepository
	visits       visitChecker
	now          func() time.Time
}

func NewReviewService(reviewRepo ports.ReviewRepository, destRepo ports.DestinationRepository, profileRepo ports.ProfileRepository, visits visitChecker) *ReviewService {
	return &ReviewService{
		reviews:      reviewRepo,
		destinations: destRepo,
		profiles:     profileRepo,
		visits:       visits,
		now:          time.Now,
	}
}

// ListForDestination returns the destination's reviews. Anonymous callers see
// everything. An authenticated caller without a completed stay sees everything
// except their own entries; a caller who has visited sees the full list,
// their own included.
func (s *ReviewService) ListForDestination(ctx context.Context, destinationID string, caller *uuid.UUID) ([]domain.Review, error) {
	if err := s.ensureDestinationExists(ctx, destinationID); err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ListByDestination(ctx, destinationID)
	if err != nil {
		return nil, err
	}
	if caller == nil {
		return reviews, nil
	}
	if s.visits.HasVisited(ctx, *caller, destinationID) {
		return reviews, nil
	}

	filtered := make([]domain.Review, 0, len(reviews))
	for _, review := range reviews {
		if review.UserID != *caller {
			filtered = append(filtered, review)
		}
	}
	return filtered, nil
}

// Add posts a review on behalf of the user. The write path is gated three
// ways: a non-empty comment, a completed stay at the destination, and no
// prior review by the same user for the same destination.
func (s *ReviewService) Add(ctx context.Context, user *domain.User, destinationID, comment string, rating *int) (*domain.Review, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, fmt.Errorf("%w: comment is required", ErrReviewValidation)
	}
	if rating != nil && (*rating < 1 || *rating > 5) {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrReviewValidation)
	}
	if err := s.ensureDestinationExists(ctx, destinationID); err != nil {
		return nil, err
	}
	if !s.visits.HasVisited(ctx, user.ID, destinationID) {
		return nil, ErrReviewForbidden
	}

	reviews, err := s.reviews.ListByDestination(ctx, destinationID)
	if err != nil {
		return nil, err
	}
	for _, existing := range reviews {
		if existing.UserID == user.ID {
			return nil, ErrReviewAlreadyExists
		}
	}

	review := domain.Review{
		ID:            uuid.New(),
		DestinationID: destinationID,
		UserID:        user.ID,
		UserName:      user.Name,
		Comment:       comment,
		Rating:        rating,
		CreatedAt:     s.now().UTC(),
	}

	reviews = append(reviews, review)
	if err := s.reviews.SaveForDestination(ctx, destinationID, reviews); err != nil {
		return nil, err
	}

	if err := s.bumpReviewCount(ctx, user); err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *ReviewService) ensureDestinationExists(ctx context.Context, destinationID string) error {
	if _, err := s.destinations.FindByID(ctx, destinationID); err != nil {
		if isNotFound(err) {
			return ErrDestinationNotFound
		}
		return err
	}
	return nil
}

func (s *ReviewService) bumpReviewCount(ctx context.Context, user *domain.User) error {
	profile, err := s.profiles.Find(ctx, user.ID)
	if err != nil {
		if !isNotFound(err) {
			return err
		}
		profile = defaultProfile(user, s.now().UTC())
	}
	profile.ReviewsCount++
	return s.profiles.Save(ctx, profile)
}
