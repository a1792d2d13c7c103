package repository

import (
	"context"
	"testing"

	"github.com/joblyhq/jobly/internal/database/sqlutil"
	"github.com/joblyhq/jobly/internal/testutil"
	jobErrors "github.com/joblyhq/jobly/jobs/errors"
	"github.com/joblyhq/jobly/jobs/models"
	"github.com/stretchr/testify/require"
)

// TestPostgresRepository_Integration requires RUN_DB_TESTS=1.
func TestPostgresRepository_Integration(t *testing.T) {
	client := testutil.NewIsolatedPostgres(t)
	repo := NewPostgresRepository(client)
	ctx := context.Background()

	_, err := client.DB().ExecContext(ctx, `
		INSERT INTO companies (handle, name, num_employees, description, logo_url)
		VALUES ('c1', 'C1', 1, 'Desc1', 'http://c1.img'), ('c2', 'C2', 2, 'Desc2', NULL)`)
	require.NoError(t, err)

	created, err := repo.Create(ctx, &models.Job{Title: "J1", Salary: intPtr(50000), Equity: strPtr("0.05"), CompanyHandle: "c1"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.Job{Title: "J2", Salary: intPtr(100), Equity: strPtr("0"), CompanyHandle: "c2"})
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		job, err := repo.Get(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, "J1", job.Title)
		require.Equal(t, 50000, *job.Salary)
		require.Equal(t, "0.05", *job.Equity)
		require.Equal(t, "c1", job.CompanyHandle)
		require.Equal(t, "C1", job.Company.Name)
	})

	t.Run("unknown company", func(t *testing.T) {
		_, err := repo.Create(ctx, &models.Job{Title: "J3", CompanyHandle: "nope"})
		require.ErrorIs(t, err, jobErrors.ErrCompanyNotFound)
	})

	t.Run("filters", func(t *testing.T) {
		withEquity, err := repo.FindAll(ctx, sqlutil.NewFieldSet(sqlutil.Field{Key: "hasEquity", Value: true}))
		require.NoError(t, err)
		require.Len(t, withEquity, 1)
		require.Equal(t, "C1", *withEquity[0].CompanyName)

		bySalary, err := repo.FindAll(ctx, sqlutil.NewFieldSet(
			sqlutil.Field{Key: "title", Value: "j"},
			sqlutil.Field{Key: "minSalary", Value: 1000},
		))
		require.NoError(t, err)
		require.Len(t, bySalary, 1)

		atSalary, err := repo.FindAll(ctx, sqlutil.NewFieldSet(sqlutil.Field{Key: "minSalary", Value: 50000}))
		require.NoError(t, err)
		require.Empty(t, atSalary)
	})

	t.Run("update then remove", func(t *testing.T) {
		job, err := repo.Update(ctx, created.ID, sqlutil.NewFieldSet(sqlutil.Field{Key: "equity", Value: "0.5"}))
		require.NoError(t, err)
		require.Equal(t, "0.5", *job.Equity)

		id, err := repo.Remove(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, created.ID, id)

		_, err = repo.Get(ctx, created.ID)
		require.ErrorIs(t, err, jobErrors.ErrJobNotFound)
	})
}
