package service

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"wanderlust-backend/internal/domain"
	"wanderlust-backend/internal/repository/ports"
)

// In-memory repository stubs shared by the service tests.

type memoryDestinationRepo struct {
	mu    sync.Mutex
	items map[string]domain.Destination
	saves int
}

func newMemoryDestinationRepo(items ...domain.Destination) *memoryDestinationRepo {
	repo := &memoryDestinationRepo{items: make(map[string]domain.Destination)}
	for _, item := range items {
		repo.items[item.ID] = item
	}
	return repo
}

func (r *memoryDestinationRepo) List(_ context.Context) ([]domain.Destination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]domain.Destination, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *memoryDestinationRepo) FindByID(_ context.Context, id string) (*domain.Destination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, ports.ErrKeyNotFound
	}
	return &item, nil
}

func (r *memoryDestinationRepo) SaveAll(_ context.Context, destinations []domain.Destination) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	for _, dest := range destinations {
		r.items[dest.ID] = dest
	}
	return nil
}

type memoryBookingRepo struct {
	mu    sync.Mutex
	lists map[uuid.UUID][]domain.Booking
	saves int
}

func newMemoryBookingRepo() *memoryBookingRepo {
	return &memoryBookingRepo{lists: make(map[uuid.UUID][]domain.Booking)}
}

func (r *memoryBookingRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	bookings := make([]domain.Booking, len(r.lists[userID]))
	copy(bookings, r.lists[userID])
	return bookings, nil
}

func (r *memoryBookingRepo) SaveForUser(_ context.Context, userID uuid.UUID, bookings []domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	stored := make([]domain.Booking, len(bookings))
	copy(stored, bookings)
	r.lists[userID] = stored
	return nil
}

type memoryReviewRepo struct {
	mu    sync.Mutex
	lists map[string][]domain.Review
}

func newMemoryReviewRepo() *memoryReviewRepo {
	return &memoryReviewRepo{lists: make(map[string][]domain.Review)}
}

func (r *memoryReviewRepo) ListByDestination(_ context.Context, destinationID string) ([]domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reviews := make([]domain.Review, len(r.lists[destinationID]))
	copy(reviews, r.lists[destinationID])
	return reviews, nil
}

func (r *memoryReviewRepo) SaveForDestination(_ context.Context, destinationID string, reviews []domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := make([]domain.Review, len(reviews))
	copy(stored, reviews)
	r.lists[destinationID] = stored
	return nil
}

type memorySavedRepo struct {
	mu   sync.Mutex
	sets map[uuid.UUID][]string
}

func newMemorySavedRepo() *memorySavedRepo {
	return &memorySavedRepo{sets: make(map[uuid.UUID][]string)}
}

func (r *memorySavedRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, len(r.sets[userID]))
	copy(ids, r.sets[userID])
	return ids, nil
}

func (r *memorySavedRepo) SaveForUser(_ context.Context, userID uuid.UUID, destinationIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := make([]string, len(destinationIDs))
	copy(stored, destinationIDs)
	r.sets[userID] = stored
	return nil
}

type memoryProfileRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]domain.Profile
}

func newMemoryProfileRepo() *memoryProfileRepo {
	return &memoryProfileRepo{items: make(map[uuid.UUID]domain.Profile)}
}

func (r *memoryProfileRepo) Find(_ context.Context, userID uuid.UUID) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.items[userID]
	if !ok {
		return nil, ports.ErrKeyNotFound
	}
	return &profile, nil
}

func (r *memoryProfileRepo) Save(_ context.Context, profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[profile.ID] = *profile
	return nil
}

type memoryUserRepo struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]domain.User
	byEmail map[string]uuid.UUID
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{
		byID:    make(map[uuid.UUID]domain.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (r *memoryUserRepo) Create(ctx context.Context, user *domain.User) error {
	return r.Save(ctx, user)
}

func (r *memoryUserRepo) Save(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[user.ID] = *user
	r.byEmail[user.Email] = user.ID
	return nil
}

func (r *memoryUserRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, ports.ErrKeyNotFound
	}
	return &user, nil
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byEmail[email]
	if !ok {
		return nil, ports.ErrKeyNotFound
	}
	user := r.byID[id]
	return &user, nil
}

type memorySessionRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]domain.Session
}

func newMemorySessionRepo() *memorySessionRepo {
	return &memorySessionRepo{items: make(map[uuid.UUID]domain.Session)}
}

func (r *memorySessionRepo) Create(_ context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[session.ID] = *session
	return nil
}

func (r *memorySessionRepo) Find(_ context.Context, id uuid.UUID) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.items[id]
	if !ok {
		return nil, ports.ErrKeyNotFound
	}
	return &session, nil
}

func (r *memorySessionRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.items[id]
	if !ok {
		return nil
	}
	session.Active = false
	r.items[id] = session
	return nil
}

var (
	_ ports.DestinationRepository = (*memoryDestinationRepo)(nil)
	_ ports.BookingRepository     = (*memoryBookingRepo)(nil)
	_ ports.ReviewRepository      = (*memoryReviewRepo)(nil)
	_ ports.SavedRepository       = (*memorySavedRepo)(nil)
	_ ports.ProfileRepository     = (*memoryProfileRepo)(nil)
	_ ports.UserRepository        = (*memoryUserRepo)(nil)
	_ ports.SessionRepository     = (*memorySessionRepo)(nil)
)
