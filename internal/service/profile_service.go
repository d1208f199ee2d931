package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"wanderlust-backend/internal/domain"
	"wanderlust-backend/internal/repository/ports"
)

var ErrAvatarValidation = errors.New("avatar validation failed")

var allowedAvatarTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type AvatarUpload struct {
	Reader      io.Reader
	Size        int64
	FileName    string
	ContentType string
}

type ProfileServiceConfig struct {
	Bucket   string
	MaxBytes int64
}

// ProfileService serves the denormalized per-user aggregate. Profiles are
// created lazily with zero counters on first read; the counters themselves
// are advanced by the booking and review services.
type ProfileService struct {
	profiles ports.ProfileRepository
	storage  ports.ObjectStorage
	bucket   string
	maxBytes int64
	now      func() time.Time
}

func NewProfileService(profileRepo ports.ProfileRepository, storage ports.ObjectStorage, cfg ProfileServiceConfig) *ProfileService {
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = 2 * 1024 * 1024
	}
	return &ProfileService{
		profiles: profileRepo,
		storage:  storage,
		bucket:   strings.TrimSpace(cfg.Bucket),
		maxBytes: maxBytes,
		now:      time.Now,
	}
}

func (s *ProfileService) Get(ctx context.Context, user *domain.User) (*domain.Profile, error) {
	profile, err := s.profiles.Find(ctx, user.ID)
	if err == nil {
		return profile, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	profile = defaultProfile(user, s.now().UTC())
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateAvatar validates the upload, verifies it decodes as an image, stores
// it in object storage and records the public URL on the profile.
func (s *ProfileService) UpdateAvatar(ctx context.Context, user *domain.User, upload AvatarUpload) (*domain.Profile, error) {
	if s.storage == nil {
		return nil, errors.New("avatar storage is not configured")
	}
	if upload.Reader == nil || upload.Size <= 0 {
		return nil, fmt.Errorf("%w: file is empty", ErrAvatarValidation)
	}
	if upload.Size > s.maxBytes {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", ErrAvatarValidation, s.maxBytes)
	}
	contentType := strings.ToLower(strings.TrimSpace(upload.ContentType))
	ext, ok := allowedAvatarTypes[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported content type %s", ErrAvatarValidation, upload.ContentType)
	}

	data, err := io.ReadAll(io.LimitReader(upload.Reader, s.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > s.maxBytes {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", ErrAvatarValidation, s.maxBytes)
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: file is not a decodable image", ErrAvatarValidation)
	}

	objectKey := fmt.Sprintf("avatars/%s/%s%s", user.ID.String(), s.now().UTC().Format("20060102T150405Z0700"), ext)
	url, err := s.storage.Upload(ctx, s.bucket, objectKey, contentType, bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	profile, err := s.Get(ctx, user)
	if err != nil {
		return nil, err
	}
	profile.AvatarURL = &url
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func defaultProfile(user *domain.User, now time.Time) *domain.Profile {
	return &domain.Profile{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		AvatarURL:   user.AvatarURL,
		MemberSince: now,
	}
}
