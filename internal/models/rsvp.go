package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attendance values accepted from guests.
const (
	AttendanceYes = "yes"
	AttendanceNo  = "no"
)

// Rsvp is a guest's attendance response. Records are append-only: they are
// created once by a public submission and only ever removed wholesale by the
// admin; no update path exists. The JSON tags preserve the camelCase wire
// format the dashboard and stored data already use.
type Rsvp struct {
	ID                  string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name                string    `gorm:"type:varchar(120);not null" json:"name"`
	Email               string    `gorm:"type:varchar(254);not null" json:"email"`
	Attendance          string    `gorm:"type:varchar(8);not null;index" json:"attendance"`
	Guests              int       `gorm:"not null;default:0" json:"guests"`
	Children            int       `gorm:"not null;default:0" json:"children"`
	DietaryRestrictions string    `gorm:"type:text" json:"dietaryRestrictions"`
	Message             string    `gorm:"type:text" json:"message"`
	CreatedAt           time.Time `gorm:"index" json:"createdAt"`
}

// BeforeCreate ensures UUID identifiers are generated automatically.
func (r *Rsvp) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// Attending reports whether the guest confirmed attendance.
func (r *Rsvp) Attending() bool {
	return r.Attendance == AttendanceYes
}
