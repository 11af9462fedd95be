package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/taskmarket/taskmarket-go/internal/models"
	"github.com/taskmarket/taskmarket-go/internal/optimistic"
)

// ProfileAPI is the slice of the remote API the profile service consumes.
type ProfileAPI interface {
	UpdateAvatar(ctx context.Context, pictureURL string) (*models.User, error)
}

// ProfileService holds the signed-in user's profile record for the
// session. The avatar update is the one place the client writes
// optimistically: the new picture shows immediately and is rolled back
// if the server rejects it.
type ProfileService struct {
	api ProfileAPI

	mu   sync.RWMutex
	user models.User
}

// NewProfileService creates a ProfileService seeded with the session's
// user record.
func NewProfileService(profileAPI ProfileAPI, user models.User) *ProfileService {
	return &ProfileService{
		api:  profileAPI,
		user: user,
	}
}

// User returns the current profile record.
func (s *ProfileService) User() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *ProfileService) setUser(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// SetAvatar applies the new picture optimistically, then confirms it with
// the server. On failure the previous record is restored before the
// error is surfaced.
func (s *ProfileService) SetAvatar(ctx context.Context, pictureURL string) (models.User, error) {
	speculative := s.User()
	speculative.ProfilePicture = pictureURL

	confirmed, err := optimistic.Update(s.User, s.setUser, speculative, func() (models.User, error) {
		user, err := s.api.UpdateAvatar(ctx, pictureURL)
		if err != nil {
			return models.User{}, err
		}
		return *user, nil
	})
	if err != nil {
		return models.User{}, fmt.Errorf("failed to update avatar: %w", err)
	}
	return confirmed, nil
}
