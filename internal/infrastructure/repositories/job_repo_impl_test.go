package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"rugcare.backend/internal/domain/entities"
	domainerrors "rugcare.backend/internal/domain/errors"
)

func TestJobRepository_MarkPaid(t *testing.T) {
	db := newTestDB(t)
	createJobTables(t, db)
	repo := NewJobRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	mustExec(t, db, `INSERT INTO jobs(id,job_number,user_id,client_name,client_email,payment_status,status,created_at,updated_at) VALUES (?,?,?,?,?,?,?,?,?)`,
		"job_42", "JOB-0042", "user_1", "Ada Client", "a@b.com", "unpaid", "pending", now, now)

	job, err := repo.GetByID(ctx, "job_42")
	require.NoError(t, err)
	require.Equal(t, "JOB-0042", job.JobNumber)
	require.Equal(t, "a@b.com", job.ClientEmail.String)
	require.False(t, job.ClientPhone.Valid)
	require.False(t, job.IsPaid())

	approvedAt := now.Add(time.Minute)
	require.NoError(t, repo.MarkPaid(ctx, "job_42", approvedAt))

	paid, err := repo.GetByID(ctx, "job_42")
	require.NoError(t, err)
	require.Equal(t, entities.JobPaymentStatusPaid, paid.PaymentStatus)
	require.Equal(t, entities.JobStatusInProgress, paid.Status)
	require.True(t, paid.ClientApprovedAt.Valid)

	// already paid: no error, approval time unchanged
	require.NoError(t, repo.MarkPaid(ctx, "job_42", approvedAt.Add(time.Hour)))
	again, err := repo.GetByID(ctx, "job_42")
	require.NoError(t, err)
	require.WithinDuration(t, paid.ClientApprovedAt.Time, again.ClientApprovedAt.Time, time.Second)
}

func TestJobRepository_NotFound(t *testing.T) {
	db := newTestDB(t)
	createJobTables(t, db)
	repo := NewJobRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "job_missing")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.MarkPaid(ctx, "job_missing", time.Now()), domainerrors.ErrNotFound)
}

func TestJobRepository_DBErrors(t *testing.T) {
	db := newTestDB(t)
	repo := NewJobRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "job_1")
	require.Error(t, err)
	require.Error(t, repo.MarkPaid(ctx, "job_1", time.Now()))
}

func TestBusinessProfileRepository_GetByUserID(t *testing.T) {
	db := newTestDB(t)
	createJobTables(t, db)
	repo := NewBusinessProfileRepository(db)
	ctx := context.Background()

	mustExec(t, db, `INSERT INTO business_profiles(user_id,business_name,business_email,business_phone,business_address) VALUES (?,?,?,?,?)`,
		"user_1", "Clean Rugs Co", "staff@cleanrugs.test", "555-0100", "1 Loom St")

	profile, err := repo.GetByUserID(ctx, "user_1")
	require.NoError(t, err)
	require.Equal(t, "Clean Rugs Co", profile.BusinessName)
	require.Equal(t, "staff@cleanrugs.test", profile.BusinessEmail)

	_, err = repo.GetByUserID(ctx, "user_2")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
