package migrate

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"lg/macro-plan-api/db"
)

func TestRun_EmptyDSN(t *testing.T) {
	for _, dsn := range []string{"", "   "} {
		if err := Run(dsn, "up"); !errors.Is(err, ErrNoDSN) {
			t.Errorf("Run(%q) = %v, want ErrNoDSN", dsn, err)
		}
	}
}

func TestRun_InvalidDirection(t *testing.T) {
	testCases := []struct {
		name      string
		direction string
	}{
		{"empty", ""},
		{"invalid", "invalid"},
		{"upcase", "UP"},
		{"mixed", "Down"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Run("postgres://localhost/test", tc.direction)
			if err == nil {
				t.Fatalf("Run with direction %q should return error", tc.direction)
			}
			if !strings.Contains(err.Error(), "direction") {
				t.Errorf("error %q should mention direction", err.Error())
			}
		})
	}
}

// TestMigrationFS_Paired verifies every embedded up migration has a down.
func TestMigrationFS_Paired(t *testing.T) {
	files, err := fs.Glob(db.MigrationFS, "migrations/*.up.sql")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no up migrations embedded")
	}
	for _, up := range files {
		down := strings.TrimSuffix(up, ".up.sql") + ".down.sql"
		if _, err := fs.Stat(db.MigrationFS, down); err != nil {
			t.Errorf("%s has no matching %s", up, down)
		}
	}
}
