package models

import "time"

// Invite grants a named party a personalized link and a maximum guest quota.
// The slug is the primary key and the join key with Rsvp; uniqueness is owned
// by the database.
type Invite struct {
	Slug        string    `gorm:"type:varchar(8);primaryKey" json:"slug"`
	Name        string    `gorm:"type:varchar(150);not null" json:"name"`
	LimitGuests int       `gorm:"not null" json:"limit_guests"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

func (Invite) TableName() string { return "invites" }
