package booking

import (
	"errors"

	"github.com/google/uuid"

	"ferresur/internal/domain"
)

var (
	ErrSlotTaken = errors.New("slot already booked")
	ErrNotFound  = errors.New("appointment not found")
)

type Service struct {
	Repo *Repo
}

func NewService(repo *Repo) *Service { return &Service{Repo: repo} }

// Book places an appointment if the slot has no active booking yet.
func (s *Service) Book(clientName, phone, service, slotStart string) (domain.Appointment, error) {
	n, err := s.Repo.CountActiveAt(slotStart)
	if err != nil {
		return domain.Appointment{}, err
	}
	if n > 0 {
		return domain.Appointment{}, ErrSlotTaken
	}
	a := domain.Appointment{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Phone:      phone,
		Service:    service,
		SlotStart:  slotStart,
		Status:     "PLACED",
	}
	if err := s.Repo.Insert(a); err != nil {
		return domain.Appointment{}, err
	}
	return a, nil
}

func (s *Service) List(limit int) ([]domain.Appointment, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.Repo.ListLatest(limit)
}

func (s *Service) Cancel(id string) error {
	n, err := s.Repo.Cancel(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
