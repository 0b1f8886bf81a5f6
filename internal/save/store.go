package save

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"

	"github.com/emberhall/labyrinth/internal/logger"
)

// Store persists game snapshots to a SQL database: SQLite by default,
// PostgreSQL behind the same interface.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// SaveInfo describes one stored save without its snapshot payload.
type SaveInfo struct {
	ID        string
	Name      string
	Chambers  int
	Completed int
	SavedAt   time.Time
}

// OpenSQLite opens or creates the SQLite save database at the given
// path.
func OpenSQLite(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create save directory: %w", err)
	}
	return open(NewDialect("sqlite"), path)
}

// OpenPostgres opens the PostgreSQL save database with the given DSN.
func OpenPostgres(dsn string) (*Store, error) {
	return open(NewDialect("postgres"), dsn)
}

func open(dialect Dialect, dataSource string) (*Store, error) {
	db, err := sql.Open(dialect.DriverName(), dataSource)
	if err != nil {
		return nil, fmt.Errorf("failed to open save database: %w", err)
	}

	for _, stmt := range dialect.InitStatements() {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialize save database: %w", err)
		}
	}

	s := &Store{db: db, dialect: dialect}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run save migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `CREATE TABLE IF NOT EXISTS saves (
		id TEXT PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		chamber_count INTEGER NOT NULL,
		completed_count INTEGER NOT NULL,
		snapshot TEXT NOT NULL,
		saved_at TIMESTAMP NOT NULL
	)`
	_, err := s.db.Exec(schema)
	return err
}

// Save writes a named snapshot, replacing any save with the same
// name.
func (s *Store) Save(name string, snapshot Snapshot) (string, error) {
	data, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	completed := 0
	for _, record := range snapshot.Chambers {
		if record.Completed {
			completed++
		}
	}

	id := uuid.NewString()
	now := time.Now().UTC()

	del := fmt.Sprintf("DELETE FROM saves WHERE name = %s", s.dialect.Placeholder(1))
	if _, err := s.db.Exec(del, name); err != nil {
		return "", fmt.Errorf("failed to replace save %q: %w", name, err)
	}

	insert := fmt.Sprintf(
		"INSERT INTO saves (id, name, chamber_count, completed_count, snapshot, saved_at) VALUES (%s, %s, %s, %s, %s, %s)",
		s.dialect.Placeholder(1), s.dialect.Placeholder(2), s.dialect.Placeholder(3),
		s.dialect.Placeholder(4), s.dialect.Placeholder(5), s.dialect.Placeholder(6))
	if _, err := s.db.Exec(insert, id, name, len(snapshot.Chambers), completed, string(data), now); err != nil {
		if s.dialect.IsDuplicateKeyError(err) {
			return "", fmt.Errorf("save %q was written concurrently: %w", name, err)
		}
		return "", fmt.Errorf("failed to write save %q: %w", name, err)
	}

	logger.Info("Game saved", "name", name, "id", id, "chambers", len(snapshot.Chambers))
	return id, nil
}

// Load reads a named snapshot back. The caller restores and
// revalidates it through Snapshot.Restore.
func (s *Store) Load(name string) (Snapshot, error) {
	query := fmt.Sprintf("SELECT snapshot FROM saves WHERE name = %s", s.dialect.Placeholder(1))

	var data string
	if err := s.db.QueryRow(query, name).Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return Snapshot{}, fmt.Errorf("save %q not found", name)
		}
		return Snapshot{}, fmt.Errorf("failed to read save %q: %w", name, err)
	}

	var snapshot Snapshot
	if err := yaml.Unmarshal([]byte(data), &snapshot); err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse save %q: %w", name, err)
	}

	return snapshot, nil
}

// List returns all saves ordered most recent first.
func (s *Store) List() ([]SaveInfo, error) {
	rows, err := s.db.Query("SELECT id, name, chamber_count, completed_count, saved_at FROM saves ORDER BY saved_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}
	defer rows.Close()

	var saves []SaveInfo
	for rows.Next() {
		var info SaveInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.Chambers, &info.Completed, &info.SavedAt); err != nil {
			return nil, fmt.Errorf("failed to scan save row: %w", err)
		}
		saves = append(saves, info)
	}
	return saves, rows.Err()
}

// Delete removes a named save. Returns false when it did not exist.
func (s *Store) Delete(name string) (bool, error) {
	del := fmt.Sprintf("DELETE FROM saves WHERE name = %s", s.dialect.Placeholder(1))
	result, err := s.db.Exec(del, name)
	if err != nil {
		return false, fmt.Errorf("failed to delete save %q: %w", name, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
