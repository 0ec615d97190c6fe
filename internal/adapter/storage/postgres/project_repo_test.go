package postgres

import (
	"context"
	"testing"

	"traveling-message/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepo_Seed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProjectRepo(mock)

	mock.ExpectExec("INSERT INTO project_meta").
		WithArgs("btc_address", "bc1qtest").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO project_meta").
		WithArgs("origin_label", "Vancouver Island, BC, Canada").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Seed(context.Background(), domain.Project{
		BTCAddress:  "bc1qtest",
		OriginLabel: "Vancouver Island, BC, Canada",
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepo_Seed_ExistingValuesWin(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProjectRepo(mock)

	// ON CONFLICT DO NOTHING: zero rows affected is still success.
	mock.ExpectExec("INSERT INTO project_meta").
		WithArgs("btc_address", "bc1qnew").
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mock.ExpectExec("INSERT INTO project_meta").
		WithArgs("origin_label", "Somewhere Else").
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	err = repo.Seed(context.Background(), domain.Project{
		BTCAddress:  "bc1qnew",
		OriginLabel: "Somewhere Else",
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProjectRepo(mock)

	rows := pgxmock.NewRows([]string{"k", "v"}).
		AddRow("btc_address", "bc1qtest").
		AddRow("origin_label", "Vancouver Island, BC, Canada")
	mock.ExpectQuery("SELECT k, v FROM project_meta").
		WithArgs("btc_address", "origin_label").
		WillReturnRows(rows)

	p, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "bc1qtest", p.BTCAddress)
	assert.Equal(t, "Vancouver Island, BC, Canada", p.OriginLabel)
	assert.NoError(t, mock.ExpectationsWereMet())
}
