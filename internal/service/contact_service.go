package service

import (
	"contacts-web-server/internal/model"
	"contacts-web-server/internal/ports"
	"context"
	"fmt"
	"time"
)

const maxBirthdayShift = 364

type ContactService struct {
	contactRepository ports.ContactRepository
	now               func() time.Time
}

func NewContactService(contactRepository ports.ContactRepository) *ContactService {
	return &ContactService{
		contactRepository: contactRepository,
		now:               time.Now,
	}
}

// WithClock : подменяет текущее время для выборки дней рождения
func (s *ContactService) WithClock(now func() time.Time) *ContactService {
	s.now = now
	return s
}

func (s *ContactService) List(ctx context.Context, user *model.User, page model.Page) ([]model.Contact, error) {
	contacts, err := s.contactRepository.List(ctx, user.UUID, page)
	if err != nil {
		return nil, fmt.Errorf("[ContactService] %w", err)
	}
	return contacts, nil
}

func (s *ContactService) ListAll(ctx context.Context, page model.Page) ([]model.Contact, error) {
	contacts, err := s.contactRepository.ListAll(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("[ContactService] %w", err)
	}
	return contacts, nil
}

func (s *ContactService) Get(ctx context.Context, user *model.User, id int64) (*model.Contact, error) {
	contact, err := s.contactRepository.GetByID(ctx, id, user.UUID)
	if err != nil {
		return nil, fmt.Errorf("[ContactService] %w", err)
	}
	return contact, nil
}

func (s *ContactService) Create(ctx context.Context, user *model.User, contact *model.Contact) (*model.Contact, error) {
	contact.UserUUID = user.UUID
	if contact.CRMStatus == "" {
		contact.CRMStatus = model.CRMStatusOperational
	}

	created, err := s.contactRepository.Create(ctx, contact)
	if err != nil {
		return nil, fmt.Errorf("[ContactService] %w", err)
	}
	return created, nil
}

func (s *ContactService) Update(ctx context.Context, user *model.User, id int64, contact *model.Contact) (*model.Contact, error) {
	contact.ID = id
	contact.UserUUID = user.UUID
	if contact.CRMStatus == "" {
		contact.CRMStatus = model.CRMStatusOperational
	}

	updated, err := s.contactRepository.Update(ctx, contact)
	if err != nil {
		return nil, fmt.Errorf("[ContactService] %w", err)
	}
	return updated, nil
}

// Delete : удаление отсутствующего контакта не считается ошибкой
func (s *ContactService) Delete(ctx context.Context, user *model.User, id int64) error {
	if _, err := s.contactRepository.Delete(ctx, id, user.UUID); err != nil {
		return fmt.Errorf("[ContactService] %w", err)
	}
	return nil
}

func (s *ContactService) SearchByFirstName(ctx context.Context, user *model.User, value string) ([]model.Contact, error) {
	return s.search(value, func() ([]model.Contact, error) {
		return s.contactRepository.SearchByFirstName(ctx, user.UUID, value)
	})
}

func (s *ContactService) SearchByLastName(ctx context.Context, user *model.User, value string) ([]model.Contact, error) {
	return s.search(value, func() ([]model.Contact, error) {
		return s.contactRepository.SearchByLastName(ctx, user.UUID, value)
	})
}

func (s *ContactService) SearchByEmail(ctx context.Context, user *model.User, value string) ([]model.Contact, error) {
	return s.search(value, func() ([]model.Contact, error) {
		return s.contactRepository.SearchByEmail(ctx, user.UUID, value)
	})
}

func (s *ContactService) SearchComplex(ctx context.Context, value string) ([]model.Contact, error) {
	return s.search(value, func() ([]model.Contact, error) {
		return s.contactRepository.SearchComplex(ctx, value)
	})
}

func (s *ContactService) search(value string, query func() ([]model.Contact, error)) ([]model.Contact, error) {
	if value == "" {
		return nil, fmt.Errorf("[ContactService] пустая строка поиска: %w", model.ErrValidation)
	}

	contacts, err := query()
	if err != nil {
		return nil, fmt.Errorf("[ContactService] %w", err)
	}
	return contacts, nil
}

// UpcomingBirthdays : контакты с днём рождения от сегодня до сегодня+shiftDays включительно
func (s *ContactService) UpcomingBirthdays(ctx context.Context, shiftDays int) ([]model.Contact, error) {
	if shiftDays < 0 || shiftDays > maxBirthdayShift {
		return nil, fmt.Errorf("[ContactService] shift_days должен быть от 0 до %d: %w", maxBirthdayShift, model.ErrValidation)
	}

	from, to := BirthdayWindow(s.now(), shiftDays)
	contacts, err := s.contactRepository.ListByBirthdayWindow(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("[ContactService] %w", err)
	}
	return contacts, nil
}

// BirthdayWindow : границы окна в формате MMDD; from > to, если окно переходит через новый год
func BirthdayWindow(today time.Time, shiftDays int) (string, string) {
	end := today.AddDate(0, 0, shiftDays)
	return today.Format("0102"), end.Format("0102")
}
