package repository_test

import (
	"contacts-web-server/internal/model"
	"contacts-web-server/internal/repository"
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ownerUUID = "11111111-1111-1111-1111-111111111111"

var contactColumns = []string{"id", "first_name", "last_name", "email", "phone_number", "birth_date", "crm_status", "user_uuid", "created_at", "updated_at"}

func contactRows(ids ...int64) *sqlmock.Rows {
	now := time.Now()
	rows := sqlmock.NewRows(contactColumns)
	for _, id := range ids {
		rows.AddRow(id, "Alice", "Smith", "alice@example.com", "380501234567",
			time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC), "operational", ownerUUID, now, now)
	}
	return rows
}

func TestContactRepository_List(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := repository.NewContactRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM contacts WHERE user_uuid = $1 ORDER BY id LIMIT $2 OFFSET $3")).
		WithArgs(ownerUUID, 10, 20).
		WillReturnRows(contactRows(1, 2))

	contacts, err := repo.List(context.Background(), ownerUUID, model.Page{Limit: 10, Offset: 20})
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, model.CRMStatusOperational, contacts[0].CRMStatus)
	assert.Equal(t, time.March, contacts[0].BirthDate.Month())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_ListAllEmpty(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := repository.NewContactRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM contacts ORDER BY id LIMIT $1 OFFSET $2")).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows(contactColumns))

	contacts, err := repo.ListAll(context.Background(), model.Page{Limit: 10})
	require.NoError(t, err)
	assert.NotNil(t, contacts)
	assert.Empty(t, contacts)
}

func TestContactRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("найден", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := repository.NewContactRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 AND user_uuid = $2")).
			WithArgs(int64(7), ownerUUID).
			WillReturnRows(contactRows(7))

		contact, err := repo.GetByID(ctx, 7, ownerUUID)
		require.NoError(t, err)
		assert.Equal(t, int64(7), contact.ID)
	})

	t.Run("чужой или отсутствует", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := repository.NewContactRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 AND user_uuid = $2")).
			WithArgs(int64(7), ownerUUID).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(ctx, 7, ownerUUID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestContactRepository_CreateUpdate(t *testing.T) {
	ctx := context.Background()
	contact := &model.Contact{
		ID:          3,
		FirstName:   "Alice",
		LastName:    "Smith",
		Email:       "alice@example.com",
		PhoneNumber: "380501234567",
		BirthDate:   time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC),
		CRMStatus:   model.CRMStatusOperational,
		UserUUID:    ownerUUID,
	}

	t.Run("создание", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := repository.NewContactRepository(db)

		mock.ExpectQuery("INSERT INTO contacts").
			WithArgs(contact.FirstName, contact.LastName, contact.Email, contact.PhoneNumber,
				contact.BirthDate, contact.CRMStatus, contact.UserUUID).
			WillReturnRows(contactRows(3))

		created, err := repo.Create(ctx, contact)
		require.NoError(t, err)
		assert.Equal(t, int64(3), created.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("дубликат email", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := repository.NewContactRepository(db)

		mock.ExpectQuery("INSERT INTO contacts").
			WillReturnError(&pq.Error{Code: "23505"})

		_, err := repo.Create(ctx, contact)
		assert.ErrorIs(t, err, model.ErrAlreadyExists)
	})

	t.Run("обновление отсутствующего", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := repository.NewContactRepository(db)

		mock.ExpectQuery("UPDATE contacts").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Update(ctx, contact)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("обновление", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := repository.NewContactRepository(db)

		mock.ExpectQuery("UPDATE contacts").
			WithArgs(contact.ID, contact.UserUUID, contact.FirstName, contact.LastName, contact.Email,
				contact.PhoneNumber, contact.BirthDate, contact.CRMStatus).
			WillReturnRows(contactRows(3))

		updated, err := repo.Update(ctx, contact)
		require.NoError(t, err)
		assert.Equal(t, int64(3), updated.ID)
	})
}

func TestContactRepository_Delete(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := repository.NewContactRepository(db)

	mock.ExpectExec("DELETE FROM contacts").
		WithArgs(int64(3), ownerUUID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM contacts").
		WithArgs(int64(4), ownerUUID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), 3, ownerUUID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), 4, ownerUUID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestContactRepository_Search(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := repository.NewContactRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("user_uuid = $1 AND first_name ILIKE $2")).
		WithArgs(ownerUUID, "%ali%").
		WillReturnRows(contactRows(1))
	mock.ExpectQuery(regexp.QuoteMeta("user_uuid = $1 AND last_name ILIKE $2")).
		WithArgs(ownerUUID, "%smi%").
		WillReturnRows(contactRows(1))
	mock.ExpectQuery(regexp.QuoteMeta("user_uuid = $1 AND email ILIKE $2")).
		WithArgs(ownerUUID, `%100\%\_off%`).
		WillReturnRows(contactRows())
	mock.ExpectQuery(regexp.QuoteMeta("first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1")).
		WithArgs("%ali%").
		WillReturnRows(contactRows(1, 2))

	found, err := repo.SearchByFirstName(ctx, ownerUUID, "ali")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	found, err = repo.SearchByLastName(ctx, ownerUUID, "smi")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	found, err = repo.SearchByEmail(ctx, ownerUUID, "100%_off")
	require.NoError(t, err)
	assert.Empty(t, found)

	found, err = repo.SearchComplex(ctx, "ali")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_ListByBirthdayWindow(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := repository.NewContactRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("to_char(birth_date, 'MMDD') BETWEEN $1 AND $2")).
		WithArgs("0310", "0317").
		WillReturnRows(contactRows(1))
	mock.ExpectQuery(regexp.QuoteMeta("(to_char(birth_date, 'MMDD') >= $1 OR to_char(birth_date, 'MMDD') <= $2)")).
		WithArgs("1228", "0104").
		WillReturnRows(contactRows(2))

	found, err := repo.ListByBirthdayWindow(ctx, "0310", "0317")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	found, err = repo.ListByBirthdayWindow(ctx, "1228", "0104")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}
