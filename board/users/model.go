package users

import (
	"time"

	"gopkg.in/mgo.v2/bson"
)

// User is the account document persisted in mongo. It carries no
// behavior of its own; handlers read it and view models project it.
type User struct {
	Id           bson.ObjectId          `bson:"_id,omitempty" json:"id"`
	FirstName    string                 `bson:"first_name" json:"first_name"`
	LastName     string                 `bson:"last_name" json:"last_name"`
	UserName     string                 `bson:"username" json:"username"`
	UserNameSlug string                 `bson:"username_slug" json:"username_slug"`
	Password     string                 `bson:"password" json:"-"`
	Email        string                 `bson:"email" json:"email,omitempty"`
	Description  string                 `bson:"description" json:"description,omitempty"`
	Image        string                 `bson:"image" json:"image,omitempty"`
	Facebook     map[string]interface{} `bson:"facebook,omitempty" json:"-"`
	Google       map[string]interface{} `bson:"gplus,omitempty" json:"-"`
	TwoFactor    TwoFactor              `bson:"two_factor" json:"-"`
	Validated    bool                   `bson:"validated" json:"validated"`
	Created      time.Time              `bson:"created_at" json:"created_at"`
	Updated      time.Time              `bson:"updated_at" json:"updated_at"`
}

// TwoFactor keeps the state of the second auth step.
type TwoFactor struct {
	Enabled       bool       `bson:"enabled" json:"enabled"`
	ConfirmedAt   *time.Time `bson:"confirmed_at,omitempty" json:"confirmed_at,omitempty"`
	RecoveryCodes int        `bson:"recovery_codes" json:"recovery_codes"`
}

// ProfileView is the public projection of a user document.
type ProfileView struct {
	Id          bson.ObjectId `json:"id"`
	UserName    string        `json:"username"`
	Description string        `json:"description,omitempty"`
	Image       string        `json:"image,omitempty"`
	Since       time.Time     `json:"since"`
}

func (u User) Profile() ProfileView {
	return ProfileView{
		Id:          u.Id,
		UserName:    u.UserName,
		Description: u.Description,
		Image:       u.Image,
		Since:       u.Created,
	}
}
