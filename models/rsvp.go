package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// AttendeeNames is an ordered list of attendee display names, stored as a
// JSONB column.
type AttendeeNames []string

// Value implements driver.Valuer.
func (n AttendeeNames) Value() (driver.Value, error) {
	if n == nil {
		return nil, nil
	}
	b, err := json.Marshal([]string(n))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (n *AttendeeNames) Scan(value interface{}) error {
	if value == nil {
		*n = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("attendee_names: unsupported column type %T", value)
	}
	if len(data) == 0 {
		*n = nil
		return nil
	}
	return json.Unmarshal(data, (*[]string)(n))
}

// GormDataType tells the migrator which column type to use.
func (AttendeeNames) GormDataType() string { return "jsonb" }

// Rsvp is a guest's attendance response, keyed by slug. A slug holds exactly
// one response; every submission fully replaces the previous one and
// advances UpdatedAt. There is no history in this table (see RsvpHistory).
type Rsvp struct {
	Slug          string        `gorm:"type:varchar(8);primaryKey" json:"slug"`
	Attending     bool          `gorm:"not null" json:"attending"`
	Guests        int           `gorm:"not null;default:0" json:"guests"`
	AttendeeNames AttendeeNames `gorm:"type:jsonb" json:"attendee_names"`
	CreatedAt     time.Time     `json:"-"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (Rsvp) TableName() string { return "rsvps" }

// RsvpHistory is an append-only audit row, one per submission. Writes to it
// are best-effort; the primary rsvps upsert never depends on it.
type RsvpHistory struct {
	ID            uint          `gorm:"primaryKey"`
	Slug          string        `gorm:"type:varchar(8);index;not null"`
	Attending     bool          `gorm:"not null"`
	Guests        int           `gorm:"not null"`
	AttendeeNames AttendeeNames `gorm:"type:jsonb"`
	CreatedAt     time.Time
}

func (RsvpHistory) TableName() string { return "rsvps_history" }
