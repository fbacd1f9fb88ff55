package progress

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS progress (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TEXT NOT NULL,
    course_id TEXT NOT NULL,
    student_id TEXT NOT NULL,
    grade INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_progress_course_student
    ON progress (course_id, student_id);
`

// SQLiteRecorder keeps the progress log in a local SQLite table.
// The table is append-only: no update or delete statements exist.
type SQLiteRecorder struct {
	db *sql.DB
}

// Compile-time check: *SQLiteRecorder satisfies the Recorder interface.
var _ Recorder = (*SQLiteRecorder)(nil)

// NewSQLite opens (or creates) the progress database at dbPath.
func NewSQLite(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteRecorder{db: db}, nil
}

func (s *SQLiteRecorder) Close() error {
	return s.db.Close()
}

func (s *SQLiteRecorder) Append(ctx context.Context, rec Record) error {
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO progress (created_at, course_id, student_id, grade) VALUES (?, ?, ?, ?)",
		createdAt.Format(time.RFC3339), rec.CourseID, rec.StudentID, rec.Grade,
	)
	return err
}

func (s *SQLiteRecorder) List(ctx context.Context, courseID, studentID string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, created_at, course_id, student_id, grade FROM progress WHERE course_id = ? AND student_id = ? ORDER BY id",
		courseID, studentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var createdAt string
		if err := rows.Scan(&rec.ID, &createdAt, &rec.CourseID, &rec.StudentID, &rec.Grade); err != nil {
			return nil, err
		}
		rec.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
