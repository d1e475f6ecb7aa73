package domain

import "path/filepath"

const (
	// HearthDirName is the name of the state directory created next to the plan file.
	HearthDirName = ".hearth"

	// DatabaseFileName is the name of the SQLite database inside the state directory.
	DatabaseFileName = "hearth.db"

	// YAMLPlanFileName is the name of the YAML plan file.
	YAMLPlanFileName = "hearth.yaml"

	// TOMLPlanFileName is the name of the TOML plan file.
	TOMLPlanFileName = "hearth.toml"

	// DefaultTimezone is used when a plan or schedule does not name one.
	DefaultTimezone = "America/New_York"

	// DefaultOpenSchedule is the cron expression the daemon opens the day with.
	DefaultOpenSchedule = "5 0 * * *"

	// DefaultBackfillLimit bounds concurrent dates during a backfill.
	DefaultBackfillLimit = 4

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// PlanFileNames lists the plan file names in lookup order.
func PlanFileNames() []string {
	return []string{YAMLPlanFileName, TOMLPlanFileName}
}

// DefaultDatabasePath returns the default database location relative to the plan directory.
// It joins .hearth and hearth.db.
func DefaultDatabasePath() string {
	return filepath.Join(HearthDirName, DatabaseFileName)
}
