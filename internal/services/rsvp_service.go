package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/elsmrh/sami-yaya/internal/models"
)

var (
	// ErrRsvpNotFound indicates the requested RSVP record does not exist.
	ErrRsvpNotFound = errors.New("rsvp service: rsvp not found")

	// ErrRsvpInvalid indicates the submission is missing required fields.
	ErrRsvpInvalid = errors.New("rsvp service: invalid submission")
)

// RsvpService owns the durable RSVP record collection: append, list and
// delete-by-id. Each mutation runs as a single database statement, so two
// overlapping submissions can never lose each other's append.
type RsvpService struct {
	db *gorm.DB
}

// NewRsvpService constructs an RSVP service once a database handle is supplied.
func NewRsvpService(db *gorm.DB) (*RsvpService, error) {
	if db == nil {
		return nil, errors.New("rsvp service: db is required")
	}
	return &RsvpService{db: db}, nil
}

// CreateRsvpInput captures a guest submission. Guests and Children are
// pointers so an absent count can be told apart from an explicit zero.
type CreateRsvpInput struct {
	Name                string
	Email               string
	Attendance          string
	Guests              *int
	Children            *int
	DietaryRestrictions string
	Message             string
}

// Create normalises and persists a new record: a declined attendance zeroes
// both counts, an accepted one defaults to a single adult when no count was
// given. The id and creation timestamp are assigned here, never by the caller.
func (s *RsvpService) Create(ctx context.Context, input CreateRsvpInput) (*models.Rsvp, error) {
	if s == nil {
		return nil, errors.New("rsvp service: service not initialised")
	}
	ctx = ensuredContext(ctx)

	record := &models.Rsvp{
		Name:                strings.TrimSpace(input.Name),
		Email:               strings.TrimSpace(input.Email),
		Attendance:          strings.ToLower(strings.TrimSpace(input.Attendance)),
		DietaryRestrictions: input.DietaryRestrictions,
		Message:             input.Message,
	}

	if record.Name == "" || record.Email == "" {
		return nil, ErrRsvpInvalid
	}

	switch record.Attendance {
	case models.AttendanceYes:
		record.Guests = 1
		if input.Guests != nil && *input.Guests >= 0 {
			record.Guests = *input.Guests
		}
		if input.Children != nil && *input.Children >= 0 {
			record.Children = *input.Children
		}
	case models.AttendanceNo:
		record.Guests = 0
		record.Children = 0
	default:
		return nil, ErrRsvpInvalid
	}

	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, fmt.Errorf("rsvp service: create: %w", err)
	}

	return record, nil
}

// List returns every record in insertion order.
func (s *RsvpService) List(ctx context.Context) ([]models.Rsvp, error) {
	if s == nil {
		return nil, errors.New("rsvp service: service not initialised")
	}
	ctx = ensuredContext(ctx)

	records := make([]models.Rsvp, 0)
	if err := s.db.WithContext(ctx).Order("created_at, id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("rsvp service: list: %w", err)
	}

	return records, nil
}

// Delete removes the record with the given id. Deleting an unknown id returns
// ErrRsvpNotFound and leaves the collection untouched.
func (s *RsvpService) Delete(ctx context.Context, id string) error {
	if s == nil {
		return errors.New("rsvp service: service not initialised")
	}
	ctx = ensuredContext(ctx)

	id = strings.TrimSpace(id)
	if id == "" {
		return ErrRsvpNotFound
	}

	result := s.db.WithContext(ctx).Delete(&models.Rsvp{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("rsvp service: delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRsvpNotFound
	}

	return nil
}

func ensuredContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
