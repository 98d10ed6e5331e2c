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
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		password_hash TEXT,
		role TEXT NOT NULL,
		status TEXT NOT NULL,
		last_login_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createJobTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE jobs (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		title TEXT NOT NULL,
		company TEXT NOT NULL,
		region TEXT,
		type TEXT,
		salary_range TEXT,
		description TEXT,
		apply_url TEXT,
		status TEXT NOT NULL,
		is_verified BOOLEAN NOT NULL DEFAULT false,
		is_featured BOOLEAN NOT NULL DEFAULT false,
		moderated_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createInvestorTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE investors (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		website TEXT,
		stages TEXT,
		verticals TEXT,
		check_size TEXT,
		description TEXT,
		status TEXT NOT NULL,
		is_verified BOOLEAN NOT NULL DEFAULT false,
		moderated_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createApplicationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE applications (
		id TEXT PRIMARY KEY,
		job_id TEXT NOT NULL,
		candidate_id TEXT,
		candidate_name TEXT NOT NULL,
		candidate_email TEXT NOT NULL,
		cv_url TEXT NOT NULL,
		cover_letter TEXT,
		status TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (job_id, candidate_email)
	);`)
}

func createStartupProfileTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE startup_profiles (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		logo TEXT,
		slogan TEXT,
		about TEXT,
		industry TEXT,
		website TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createCheckoutTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE checkouts (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		plan TEXT NOT NULL,
		job_id TEXT,
		amount_cents INTEGER NOT NULL,
		currency TEXT NOT NULL,
		status TEXT NOT NULL,
		settle_at DATETIME NOT NULL,
		settled_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
