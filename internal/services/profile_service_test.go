package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskmarket/taskmarket-go/internal/models"
)

type fakeProfileAPI struct {
	err      error
	returned models.User
	calls    int
}

func (f *fakeProfileAPI) UpdateAvatar(ctx context.Context, pictureURL string) (*models.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	user := f.returned
	user.ProfilePicture = pictureURL
	return &user, nil
}

func TestSetAvatar_CommitsConfirmedValue(t *testing.T) {
	fake := &fakeProfileAPI{returned: models.User{ID: "u1", Username: "alice"}}
	service := NewProfileService(fake, models.User{ID: "u1", Username: "alice", ProfilePicture: "old.png"})

	user, err := service.SetAvatar(context.Background(), "new.png")
	require.NoError(t, err)
	assert.Equal(t, "new.png", user.ProfilePicture)
	assert.Equal(t, "new.png", service.User().ProfilePicture)
	assert.Equal(t, 1, fake.calls)
}

func TestSetAvatar_RollsBackOnFailure(t *testing.T) {
	fake := &fakeProfileAPI{err: errors.New("storage quota exceeded")}
	service := NewProfileService(fake, models.User{ID: "u1", ProfilePicture: "old.png"})

	_, err := service.SetAvatar(context.Background(), "new.png")
	require.Error(t, err)
	assert.ErrorContains(t, err, "storage quota exceeded")

	// The pre-optimistic snapshot is restored before the error surfaces.
	assert.Equal(t, "old.png", service.User().ProfilePicture)
}
