package model

import (
	"time"

	"github.com/uptrace/bun"
)

// User mirrors the profile document the identity provider's sign-up flow
// creates. The id is issued by the provider and treated as opaque.
type User struct {
	bun.BaseModel `bun:"users,alias:u"`

	UserID       string    `bun:"user_id,pk" json:"id"`
	Email        string    `bun:"email" json:"email"`
	ProfileName  string    `bun:"profile_name" json:"profileName"`
	ProfileImage string    `bun:"profile_image" json:"profileImage"`
	Role         string    `bun:"role" json:"role"`
	CreatedAt    time.Time `bun:"created_at,nullzero,default:now()" json:"createdAt"`

	// Activities is a relationship, not an owned collection: the set of
	// activities whose user_id equals this user's id. Populated on demand.
	Activities []*Activity `bun:"rel:has-many,join:user_id=user_id" json:"activities,omitempty"`
}

// UserWithScore is the profile detail payload: the user, their activities and
// the total score summed across them.
type UserWithScore struct {
	*User

	TotalScore int `json:"totalScore"`
}
