package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createPaymentTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE payments (
		id TEXT PRIMARY KEY,
		job_id TEXT,
		stripe_session_id TEXT NOT NULL UNIQUE,
		stripe_payment_intent_id TEXT,
		amount INTEGER NOT NULL DEFAULT 0,
		currency TEXT NOT NULL DEFAULT 'usd',
		status TEXT NOT NULL,
		paid_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createJobTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE jobs (
		id TEXT PRIMARY KEY,
		job_number TEXT NOT NULL,
		user_id TEXT NOT NULL,
		client_name TEXT NOT NULL,
		client_email TEXT,
		client_phone TEXT,
		payment_status TEXT NOT NULL,
		status TEXT NOT NULL,
		client_approved_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE business_profiles (
		user_id TEXT PRIMARY KEY,
		business_name TEXT,
		business_email TEXT,
		business_phone TEXT,
		business_address TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createEstimateTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE inspections (
		id TEXT PRIMARY KEY,
		job_id TEXT NOT NULL,
		rug_number TEXT,
		rug_type TEXT,
		length NUMERIC,
		width NUMERIC,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE approved_estimates (
		id TEXT PRIMARY KEY,
		job_id TEXT NOT NULL,
		inspection_id TEXT,
		total_amount TEXT NOT NULL,
		services TEXT,
		created_at DATETIME
	);`)
}

func createNotificationTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE notifications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		type TEXT NOT NULL,
		title TEXT NOT NULL,
		message TEXT,
		metadata TEXT,
		is_read BOOLEAN,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE audit_logs (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		action TEXT NOT NULL,
		entity_type TEXT NOT NULL,
		entity_id TEXT,
		details TEXT,
		created_at DATETIME
	);`)
}
