package repository

import (
	"contacts-web-server/config"
	"contacts-web-server/internal/model"
	"contacts-web-server/internal/util"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

const contactColumns = `id, first_name, last_name, email, phone_number, birth_date, crm_status, user_uuid, created_at, updated_at`

type ContactRepository struct {
	*config.Database
}

func NewContactRepository(database *config.Database) *ContactRepository {
	return &ContactRepository{database}
}

// List : контакты владельца с пагинацией limit/offset
func (r *ContactRepository) List(ctx context.Context, userUUID string, page model.Page) ([]model.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE user_uuid = $1 ORDER BY id LIMIT $2 OFFSET $3`
	return r.selectContacts(ctx, "не удалось получить список контактов", query, userUUID, page.Limit, page.Offset)
}

// ListAll : все контакты, без учёта владельца
func (r *ContactRepository) ListAll(ctx context.Context, page model.Page) ([]model.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts ORDER BY id LIMIT $1 OFFSET $2`
	return r.selectContacts(ctx, "не удалось получить список всех контактов", query, page.Limit, page.Offset)
}

func (r *ContactRepository) GetByID(ctx context.Context, id int64, userUUID string) (*model.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1 AND user_uuid = $2`

	var contact model.Contact
	err := r.GetContext(ctx, &contact, query, id, userUUID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("[ContactRepo] контакт %d: %w", id, model.ErrNotFound)
	}
	if err != nil {
		return nil, util.LogError("[ContactRepo] не удалось найти контакт", err)
	}
	return &contact, nil
}

func (r *ContactRepository) Create(ctx context.Context, contact *model.Contact) (*model.Contact, error) {
	query := `
	INSERT INTO contacts (first_name, last_name, email, phone_number, birth_date, crm_status, user_uuid)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING ` + contactColumns

	var created model.Contact
	err := r.QueryRowxContext(ctx, query,
		contact.FirstName, contact.LastName, contact.Email, contact.PhoneNumber,
		contact.BirthDate, contact.CRMStatus, contact.UserUUID,
	).StructScan(&created)
	if isUniqueViolation(err) {
		return nil, fmt.Errorf("[ContactRepo] email %s: %w", contact.Email, model.ErrAlreadyExists)
	}
	if err != nil {
		return nil, util.LogError("[ContactRepo] ошибка вставки контакта", err)
	}
	return &created, nil
}

// Update : перезаписывает поля контакта владельца
func (r *ContactRepository) Update(ctx context.Context, contact *model.Contact) (*model.Contact, error) {
	query := `
	UPDATE contacts
	SET first_name = $3, last_name = $4, email = $5, phone_number = $6, birth_date = $7, crm_status = $8,
	    updated_at = NOW()
	WHERE id = $1 AND user_uuid = $2
	RETURNING ` + contactColumns

	var updated model.Contact
	err := r.QueryRowxContext(ctx, query,
		contact.ID, contact.UserUUID,
		contact.FirstName, contact.LastName, contact.Email, contact.PhoneNumber,
		contact.BirthDate, contact.CRMStatus,
	).StructScan(&updated)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("[ContactRepo] контакт %d: %w", contact.ID, model.ErrNotFound)
	case isUniqueViolation(err):
		return nil, fmt.Errorf("[ContactRepo] email %s: %w", contact.Email, model.ErrAlreadyExists)
	case err != nil:
		return nil, util.LogError("[ContactRepo] не удалось обновить контакт", err)
	}
	return &updated, nil
}

// Delete : false, если у владельца нет такого контакта
func (r *ContactRepository) Delete(ctx context.Context, id int64, userUUID string) (bool, error) {
	result, err := r.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1 AND user_uuid = $2`, id, userUUID)
	if err != nil {
		return false, util.LogError("[ContactRepo] не удалось удалить контакт", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, util.LogError("[ContactRepo] не удалось удалить контакт", err)
	}
	return affected > 0, nil
}

func (r *ContactRepository) SearchByFirstName(ctx context.Context, userUUID, value string) ([]model.Contact, error) {
	return r.searchOwned(ctx, "first_name", userUUID, value)
}

func (r *ContactRepository) SearchByLastName(ctx context.Context, userUUID, value string) ([]model.Contact, error) {
	return r.searchOwned(ctx, "last_name", userUUID, value)
}

func (r *ContactRepository) SearchByEmail(ctx context.Context, userUUID, value string) ([]model.Contact, error) {
	return r.searchOwned(ctx, "email", userUUID, value)
}

// SearchComplex : подстрока в имени, фамилии или email среди всех контактов
func (r *ContactRepository) SearchComplex(ctx context.Context, value string) ([]model.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts
	WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1
	ORDER BY id`
	return r.selectContacts(ctx, "ошибка поиска контактов", query, likePattern(value))
}

// ListByBirthdayWindow : день рождения (MMDD) в окне [from, to].
// Если from > to, окно переходит через конец года.
func (r *ContactRepository) ListByBirthdayWindow(ctx context.Context, fromMMDD, toMMDD string) ([]model.Contact, error) {
	condition := `to_char(birth_date, 'MMDD') BETWEEN $1 AND $2`
	if fromMMDD > toMMDD {
		condition = `(to_char(birth_date, 'MMDD') >= $1 OR to_char(birth_date, 'MMDD') <= $2)`
	}

	query := `SELECT ` + contactColumns + ` FROM contacts WHERE ` + condition + ` ORDER BY id`
	return r.selectContacts(ctx, "ошибка выборки дней рождения", query, fromMMDD, toMMDD)
}

func (r *ContactRepository) searchOwned(ctx context.Context, column, userUUID, value string) ([]model.Contact, error) {
	// column приходит только из констант выше
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE user_uuid = $1 AND ` + column + ` ILIKE $2 ORDER BY id`
	return r.selectContacts(ctx, "ошибка поиска контактов", query, userUUID, likePattern(value))
}

func (r *ContactRepository) selectContacts(ctx context.Context, message, query string, args ...interface{}) ([]model.Contact, error) {
	contacts := make([]model.Contact, 0)
	if err := r.SelectContext(ctx, &contacts, query, args...); err != nil {
		return nil, util.LogError("[ContactRepo] "+message, err)
	}
	return contacts, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern : %value% с экранированными спецсимволами LIKE
func likePattern(value string) string {
	return "%" + likeEscaper.Replace(value) + "%"
}
