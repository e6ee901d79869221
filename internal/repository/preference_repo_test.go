package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yusufkecer/wellness-backend/internal/domain"
)

func setupPreferenceRepo(t *testing.T) (sqlmock.Sqlmock, *PreferenceRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return mock, NewPreferenceRepository(db)
}

func TestPreferenceGet_Missing(t *testing.T) {
	mock, repo := setupPreferenceRepo(t)
	mock.ExpectQuery(`SELECT data FROM user_preferences`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"data"}))

	prefs, err := repo.Get(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Nil(t, prefs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceGet_Partial(t *testing.T) {
	mock, repo := setupPreferenceRepo(t)
	mock.ExpectQuery(`SELECT data FROM user_preferences`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow([]byte(`{"darkMode":true,"fontSize":"large"}`)))

	prefs, err := repo.Get(context.Background(), "user-1")

	require.NoError(t, err)
	require.NotNil(t, prefs)
	require.NotNil(t, prefs.DarkMode)
	assert.True(t, *prefs.DarkMode)
	assert.Equal(t, "large", *prefs.FontSize)
	assert.Nil(t, prefs.Language)
}

func TestPreferenceReplace(t *testing.T) {
	mock, repo := setupPreferenceRepo(t)
	prefs := domain.PreferenceSet{Language: "en", FontSize: domain.FontSmall, AccentColor: "blue", AutoSync: true}
	mock.ExpectExec(`INSERT INTO user_preferences`).
		WithArgs("user-1", []byte(`{"darkMode":false,"metricUnits":false,"notifications":false,"language":"en","smartDevice":false,"fontSize":"small","accentColor":"blue","autoSync":true,"locationServices":false}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Replace(context.Background(), "user-1", prefs))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceReplace_Failure(t *testing.T) {
	mock, repo := setupPreferenceRepo(t)
	mock.ExpectExec(`INSERT INTO user_preferences`).WillReturnError(errors.New("read only"))

	err := repo.Replace(context.Background(), "user-1", domain.PreferenceSet{})

	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}
