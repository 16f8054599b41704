package entity

import (
	"fmt"
	"strings"
)

// AvatarURLPattern produces the placeholder avatar assigned at sign-up.
const AvatarURLPattern = "https://i.pravatar.cc/150?u=%s"

type User struct {
	ID        string `json:"id" firestore:"-"`
	Name      string `json:"name" firestore:"name"`
	AvatarURL string `json:"avatarUrl" firestore:"avatarUrl"`
	Email     string `json:"email" firestore:"email"`
}

func PlaceholderAvatar(userID string) string {
	return fmt.Sprintf(AvatarURLPattern, userID)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UserPatch lists the profile fields an owner may change. Nil fields are
// left untouched.
type UserPatch struct {
	Name      *string `json:"name,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.AvatarURL == nil
}

// Normalize trims the supplied values and drops the ones equal to the
// current profile so unchanged fields never reach the store.
func (p UserPatch) Normalize(current *User) UserPatch {
	var out UserPatch
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if current == nil || name != current.Name {
			out.Name = &name
		}
	}
	if p.AvatarURL != nil {
		avatar := strings.TrimSpace(*p.AvatarURL)
		if current == nil || avatar != current.AvatarURL {
			out.AvatarURL = &avatar
		}
	}
	return out
}

func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.AvatarURL != nil {
		u.AvatarURL = *p.AvatarURL
	}
	return u
}
