package usecase

import (
	"context"
	"io"

	"teamsynchub/internal/domain/entity"
	"teamsynchub/internal/domain/listview"
	"teamsynchub/pkg/errors"
	"teamsynchub/pkg/logger"
)

// UpdateProfile changes the signed-in user's name or avatar. Unchanged
// fields are dropped; an empty patch makes no store call.
func (c *StateController) UpdateProfile(ctx context.Context, patch entity.UserPatch) (*entity.User, error) {
	epoch, user, err := c.ready()
	if err != nil {
		return nil, err
	}

	patch = patch.Normalize(&user)
	if patch.Name != nil && *patch.Name == "" {
		return nil, errors.Validation("name is required")
	}
	if patch.IsEmpty() {
		return &user, nil
	}

	updated, err := c.store.UpdateUser(ctx, user.ID, patch)
	if err != nil {
		return nil, err
	}

	err = c.commit(epoch, func() {
		c.session.User = *updated
		for i, u := range c.users {
			if u.ID == updated.ID {
				v := *updated
				c.users[i] = &v
			}
		}
	})
	if err != nil {
		return nil, err
	}

	out := *updated
	c.notifier.Publish(EventUserUpdated, &out)
	return &out, nil
}

// UploadAvatar stores the image and points the profile at it. The previous
// upload is removed once the profile no longer references it.
func (c *StateController) UploadAvatar(ctx context.Context, file io.Reader, contentType string) (*entity.User, error) {
	_, user, err := c.ready()
	if err != nil {
		return nil, err
	}
	if c.files == nil {
		return nil, errors.InvalidState("avatar uploads are not configured")
	}

	url, err := c.files.UploadFile(ctx, file, contentType, "avatars/"+user.ID)
	if err != nil {
		return nil, errors.Remote("Failed to upload avatar", err)
	}

	updated, err := c.UpdateProfile(ctx, entity.UserPatch{AvatarURL: &url})
	if err != nil {
		return nil, err
	}

	previous := user.AvatarURL
	if previous != "" && previous != url && previous != entity.PlaceholderAvatar(user.ID) {
		if err := c.files.DeleteFile(ctx, previous); err != nil {
			logger.Debug("Kept previous avatar %s: %v", previous, err)
		}
	}
	return updated, nil
}

// AssignedSalesRecords lists the signed-in user's records for the profile
// page.
func (c *StateController) AssignedSalesRecords() ([]*entity.SalesRecord, error) {
	_, user, err := c.ready()
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return copySales(listview.AssignedTo(c.sales, user.ID)), nil
}
