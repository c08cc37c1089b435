package database

import (
	"errors"
	"testing"

	"appointment-scheduler/cmd/internal/domain/entity"
	"gorm.io/gorm"
)

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(":memory:", false)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestMigrateCreatesAppointments(t *testing.T) {
	db := openMemory(t)

	if err := Migrate(db, Migrations); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if !db.Migrator().HasTable("appointments") {
		t.Fatal("expected appointments table")
	}
	for _, col := range []string{"id", "name", "identification_number", "phone", "date"} {
		if !db.Migrator().HasColumn(&entity.Appointment{}, col) {
			t.Errorf("expected column %s", col)
		}
	}

	var count int64
	db.Model(&entity.SchemaMigration{}).Count(&count)
	if count != int64(len(Migrations)) {
		t.Fatalf("expected %d recorded migrations, got %d", len(Migrations), count)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openMemory(t)

	calls := 0
	migrations := []Migration{{
		Version: "0001_test",
		Up: func(tx *gorm.DB) error {
			calls++
			return nil
		},
	}}

	for i := 0; i < 3; i++ {
		if err := Migrate(db, migrations); err != nil {
			t.Fatalf("migrate run %d: %v", i, err)
		}
	}
	if calls != 1 {
		t.Fatalf("expected migration to run once, ran %d times", calls)
	}
}

func TestMigrateFailureIsNotRecorded(t *testing.T) {
	db := openMemory(t)

	boom := errors.New("boom")
	migrations := []Migration{{
		Version: "0001_broken",
		Up:      func(tx *gorm.DB) error { return boom },
	}}

	err := Migrate(db, migrations)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom error, got %v", err)
	}

	var count int64
	db.Model(&entity.SchemaMigration{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no recorded migrations, got %d", count)
	}
}
