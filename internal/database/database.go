package database

import (
	"database/sql"
	"os"
	"strings"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/joho/godotenv/autoload"
	_ "github.com/mattn/go-sqlite3"
)

// Service stores finished-game results. The driver and DSN come from the
// environment (PITCH_DB_DRIVER, PITCH_DB_DSN), loaded from .env if present;
// the default is a local sqlite file.
type Service struct {
	db        *sql.DB
	mu        sync.Mutex
	tableName string
}

const tableName = "pitch_results"

// New opens the results store and creates its table if needed.
func New() (*Service, error) {
	driver := os.Getenv("PITCH_DB_DRIVER")
	if driver == "" {
		driver = "sqlite3"
	}
	dsn := os.Getenv("PITCH_DB_DSN")
	if dsn == "" {
		dsn = "./pitch.db"
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	sqlStmt := `
	create table if not exists ` + tableName + ` (
		id text not null primary key,
		created_at text,
		winning_team text,
		rounds_played integer,
		players text,
		totals text
	);
	`
	if _, err := db.Exec(sqlStmt); err != nil {
		db.Close()
		return nil, err
	}

	return &Service{db: db, tableName: tableName}, nil
}

// Close closes the underlying database.
func (s *Service) Close() error {
	return s.db.Close()
}

// Insert records a finished game.
func (s *Service) Insert(result GameResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("INSERT INTO "+s.tableName+
		" (id, created_at, winning_team, rounds_played, players, totals) VALUES (?, ?, ?, ?, ?, ?)",
		result.ID,
		result.CreatedAt,
		result.WinningTeam,
		result.RoundsPlayed,
		result.Players,
		result.Totals)
	return err
}

// GetAll returns every recorded game.
func (s *Service) GetAll() ([]GameResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.Query("SELECT id, created_at, winning_team, rounds_played, players, totals FROM " + s.tableName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanResults(rows)
}

// GetByID returns one recorded game.
func (s *Service) GetByID(id string) (GameResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result GameResult
	err := s.db.QueryRow("SELECT id, created_at, winning_team, rounds_played, players, totals FROM "+
		s.tableName+" WHERE id = ?", id).Scan(
		&result.ID,
		&result.CreatedAt,
		&result.WinningTeam,
		&result.RoundsPlayed,
		&result.Players,
		&result.Totals)
	if err != nil {
		return GameResult{}, err
	}
	return result, nil
}

// GetByPlayer returns every recorded game a player was seated in.
func (s *Service) GetByPlayer(playerName string) ([]GameResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.Query("SELECT id, created_at, winning_team, rounds_played, players, totals FROM "+
		s.tableName+" WHERE players LIKE ?", "%"+playerName+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results, err := scanResults(rows)
	if err != nil {
		return nil, err
	}
	// LIKE is a coarse filter; confirm against the seat list.
	matched := results[:0]
	for _, r := range results {
		for _, name := range strings.Split(r.Players, ",") {
			if name == playerName {
				matched = append(matched, r)
				break
			}
		}
	}
	if len(matched) == 0 {
		return nil, sql.ErrNoRows
	}
	return matched, nil
}

func scanResults(rows *sql.Rows) ([]GameResult, error) {
	var results []GameResult
	for rows.Next() {
		var result GameResult
		if err := rows.Scan(
			&result.ID,
			&result.CreatedAt,
			&result.WinningTeam,
			&result.RoundsPlayed,
			&result.Players,
			&result.Totals); err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, rows.Err()
}
