package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/joblyhq/jobly/internal/database/sqlutil"
	"github.com/joblyhq/jobly/internal/testutil"
	jobErrors "github.com/joblyhq/jobly/jobs/errors"
	"github.com/joblyhq/jobly/jobs/models"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var jobRow = []string{"id", "title", "salary", "equity", "company_handle"}

func q(s string) string { return regexp.QuoteMeta(s) }

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func TestPostgresRepository_Create(t *testing.T) {
	ctx := context.Background()
	job := &models.Job{Title: "J1", Salary: intPtr(50000), Equity: strPtr("0.05"), CompanyHandle: "c1"}

	t.Run("returns the stored row with its id", func(t *testing.T) {
		client, mock := testutil.NewMockClient(t)
		repo := NewPostgresRepository(client)

		mock.ExpectQuery(q(`INSERT INTO jobs (title, salary, equity, company_handle)`)).
			WithArgs("J1", 50000, "0.05", "c1").
			WillReturnRows(sqlmock.NewRows(jobRow).AddRow(7, "J1", 50000, "0.05", "c1"))

		created, err := repo.Create(ctx, job)
		require.NoError(t, err)
		require.Equal(t, 7, created.ID)
		require.Equal(t, "0.05", *created.Equity)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown company", func(t *testing.T) {
		client, mock := testutil.NewMockClient(t)
		repo := NewPostgresRepository(client)

		mock.ExpectQuery(q(`INSERT INTO jobs`)).WillReturnError(&pq.Error{Code: "23503"})

		_, err := repo.Create(ctx, job)
		require.ErrorIs(t, err, jobErrors.ErrCompanyNotFound)
	})
}

func TestPostgresRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	rows := func() *sqlmock.Rows {
		return sqlmock.NewRows(append(jobRow, "company_name")).AddRow(1, "J1", 1, "0.1", "c1", "C1")
	}

	t.Run("no filters", func(t *testing.T) {
		client, mock := testutil.NewMockClient(t)
		repo := NewPostgresRepository(client)

		mock.ExpectQuery(q(`LEFT JOIN companies AS c ON c.handle = j.company_handle ORDER BY title`)).
			WillReturnRows(rows())

		jobs, err := repo.FindAll(ctx, sqlutil.FieldSet{})
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		require.Equal(t, "C1", *jobs[0].CompanyName)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("equity flag takes no placeholder", func(t *testing.T) {
		client, mock := testutil.NewMockClient(t)
		repo := NewPostgresRepository(client)

		mock.ExpectQuery(q(`WHERE "title" ILIKE $1 and "salary" > $2 and "equity" > 0 ORDER BY title`)).
			WithArgs("%J%", 1).
			WillReturnRows(rows())

		filters := sqlutil.NewFieldSet(
			sqlutil.Field{Key: "title", Value: "J"},
			sqlutil.Field{Key: "minSalary", Value: 1},
			sqlutil.Field{Key: "hasEquity", Value: true},
		)
		_, err := repo.FindAll(ctx, filters)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("switched off flag alone means no WHERE", func(t *testing.T) {
		client, mock := testutil.NewMockClient(t)
		repo := NewPostgresRepository(client)

		mock.ExpectQuery(`company_handle ORDER BY title$`).WillReturnRows(rows())

		_, err := repo.FindAll(ctx, sqlutil.NewFieldSet(sqlutil.Field{Key: "hasEquity", Value: false}))
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFilterPredicates_MinSalaryIsStrict(t *testing.T) {
	require.Equal(t, `"salary" >`, filterPredicates["minSalary"].Prefix)

	frag, err := sqlutil.Filters(sqlutil.NewFieldSet(sqlutil.Field{Key: "minSalary", Value: 50000}), filterPredicates)
	require.NoError(t, err)
	require.Equal(t, `WHERE "salary" > $1`, frag.SQL)
	require.Equal(t, []interface{}{50000}, frag.Values)
}

func TestPostgresRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches the company", func(t *testing.T) {
		client, mock := testutil.NewMockClient(t)
		repo := NewPostgresRepository(client)

		mock.ExpectQuery(q(`FROM jobs WHERE id = $1`)).
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows(jobRow).AddRow(7, "J1", 50000, "0.05", "c1"))
		mock.ExpectQuery(q(`FROM companies WHERE handle = $1`)).
			WithArgs("c1").
			WillReturnRows(sqlmock.NewRows([]string{"handle", "name", "description", "num_employees", "logo_url"}).
				AddRow("c1", "C1", "Desc1", 1, "http://c1.img"))

		job, err := repo.Get(ctx, 7)
		require.NoError(t, err)
		require.Equal(t, "C1", job.Company.Name)
		require.Nil(t, job.CompanyName)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing job", func(t *testing.T) {
		client, mock := testutil.NewMockClient(t)
		repo := NewPostgresRepository(client)

		mock.ExpectQuery(q(`FROM jobs WHERE id = $1`)).WithArgs(0).WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(ctx, 0)
		require.ErrorIs(t, err, jobErrors.ErrJobNotFound)
	})
}

func TestPostgresRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("id is bound after the assignments", func(t *testing.T) {
		client, mock := testutil.NewMockClient(t)
		repo := NewPostgresRepository(client)

		mock.ExpectQuery(q(`UPDATE jobs SET "title"=$1, "salary"=$2 WHERE id = $3 RETURNING id`)).
			WithArgs("J-New", 60000, 7).
			WillReturnRows(sqlmock.NewRows(jobRow).AddRow(7, "J-New", 60000, "0.05", "c1"))

		job, err := repo.Update(ctx, 7, sqlutil.NewFieldSet(
			sqlutil.Field{Key: "title", Value: "J-New"},
			sqlutil.Field{Key: "salary", Value: 60000},
		))
		require.NoError(t, err)
		require.Equal(t, "J-New", job.Title)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing job", func(t *testing.T) {
		client, mock := testutil.NewMockClient(t)
		repo := NewPostgresRepository(client)

		mock.ExpectQuery(q(`UPDATE jobs`)).WillReturnError(sql.ErrNoRows)

		_, err := repo.Update(ctx, 0, sqlutil.NewFieldSet(sqlutil.Field{Key: "title", Value: "x"}))
		require.ErrorIs(t, err, jobErrors.ErrJobNotFound)
	})

	t.Run("no data", func(t *testing.T) {
		client, _ := testutil.NewMockClient(t)
		repo := NewPostgresRepository(client)

		_, err := repo.Update(ctx, 7, sqlutil.FieldSet{})
		require.ErrorIs(t, err, jobErrors.ErrNoData)
	})
}

func TestPostgresRepository_Remove(t *testing.T) {
	ctx := context.Background()
	client, mock := testutil.NewMockClient(t)
	repo := NewPostgresRepository(client)

	mock.ExpectQuery(q(`DELETE FROM jobs WHERE id = $1 RETURNING id`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(q(`DELETE FROM jobs`)).WithArgs(7).WillReturnError(sql.ErrNoRows)

	id, err := repo.Remove(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, 7, id)

	_, err = repo.Remove(ctx, 7)
	require.ErrorIs(t, err, jobErrors.ErrJobNotFound)
}
