package service

import (
	"context"

	"wanderlust-backend/internal/domain"
	"wanderlust-backend/internal/repository/ports"
)

// CatalogService serves the read-mostly destination catalog. An empty store
// is seeded with the three sample destinations on first read; once any
// destination exists the seed path is never taken again, so the bootstrap is
// effectively idempotent.
type CatalogService struct {
	destinations ports.DestinationRepository
}

func NewCatalogService(destRepo ports.DestinationRepository) *CatalogService {
	return &CatalogService{destinations: destRepo}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Destination, error) {
	destinations, err := s.destinations.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(destinations) > 0 {
		return destinations, nil
	}

	seed := SampleDestinations()
	if err := s.destinations.SaveAll(ctx, seed); err != nil {
		return nil, err
	}
	return seed, nil
}

func (s *CatalogService) GetByID(ctx context.Context, id string) (*domain.Destination, error) {
	dest, err := s.destinations.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrDestinationNotFound
		}
		return nil, err
	}
	return dest, nil
}

// Seed populates the catalog when it is empty and reports whether anything
// was written. Backs the explicit init endpoint.
func (s *CatalogService) Seed(ctx context.Context) (bool, error) {
	destinations, err := s.destinations.List(ctx)
	if err != nil {
		return false, err
	}
	if len(destinations) > 0 {
		return false, nil
	}
	if err := s.destinations.SaveAll(ctx, SampleDestinations()); err != nil {
		return false, err
	}
	return true, nil
}

// SampleDestinations returns the bootstrap catalog. IDs are stable; clients
// and tests rely on them.
func SampleDestinations() []domain.Destination {
	return []domain.Destination{
		{
			ID:              "1",
			Name:            "Santorini, Greece",
			Description:     "Whitewashed villages perched above the caldera of a sunken volcano.",
			LongDescription: "Santorini's clifftop towns of Oia and Fira look out over one of the most photographed sunsets in the world. Days fill easily with caldera boat trips, volcanic beaches and Assyrtiko tastings at hillside wineries.",
			Images: []string{
				"https://images.unsplash.com/photo-1570077188670-e3a8d69ac5ff",
				"https://images.unsplash.com/photo-1613395877344-13d4a8e0d49e",
			},
			Rating:   4.8,
			Reviews:  324,
			Category: "Beach",
			Region:   "Europe",
			Duration: "5-7 days",
			Price:    299,
			Highlights: []string{
				"Oia sunset viewpoint",
				"Caldera catamaran cruise",
				"Red Beach and Akrotiri ruins",
			},
		},
		{
			ID:              "2",
			Name:            "Kyoto, Japan",
			Description:     "Ancient temples, bamboo groves and the quiet rituals of old Japan.",
			LongDescription: "Once the imperial capital, Kyoto keeps more than a thousand temples and shrines within reach of its tea houses and machiya townhouses. Arashiyama's bamboo grove and the vermilion gates of Fushimi Inari reward an early start.",
			Images: []string{
				"https://images.unsplash.com/photo-1493976040374-85c8e12f0c0e",
				"https://images.unsplash.com/photo-1545569341-9eb8b30979d9",
			},
			Rating:   4.9,
			Reviews:  512,
			Category: "Cultural",
			Region:   "Asia",
			Duration: "4-6 days",
			Price:    450,
			Highlights: []string{
				"Fushimi Inari at dawn",
				"Arashiyama bamboo grove",
				"Tea ceremony in Gion",
			},
		},
		{
			ID:              "3",
			Name:            "Banff National Park, Canada",
			Description:     "Turquoise lakes and glacier-carved peaks in the Canadian Rockies.",
			LongDescription: "Banff pairs easy access with genuine wilderness: paddle Lake Louise under Victoria Glacier, drive the Icefields Parkway past ancient ice, and watch for elk from the hot springs above town.",
			Images: []string{
				"https://images.unsplash.com/photo-1503614472-8c93d56e92ce",
				"https://images.unsplash.com/photo-1561134643-668f9057cce4",
			},
			Rating:   4.7,
			Reviews:  287,
			Category: "Adventure",
			Region:   "North America",
			Duration: "3-5 days",
			Price:    350,
			Highlights: []string{
				"Lake Louise canoeing",
				"Icefields Parkway drive",
				"Banff Upper Hot Springs",
			},
		},
	}
}
