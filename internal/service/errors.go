package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/onlyone/internal/domain"
	"github.com/alexanderramin/onlyone/internal/repository"
	"github.com/alexanderramin/onlyone/internal/timetable"
)

// ErrorKind maps err to a stable label for logs and CLI exit handling.
func ErrorKind(err error) string {
	var verr *domain.ValidationError
	switch {
	case err == nil:
		return "none"
	case errors.As(err, &verr):
		return "validation"
	case errors.Is(err, timetable.ErrSlotOccupied):
		return "slot_conflict"
	case errors.Is(err, repository.ErrNotFound):
		return "not_found"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "internal"
	}
}
