package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// ErrNotFound is returned when no archived match matches the query.
var ErrNotFound = errors.New("match result not found")

// Config selects the driver and data source. Driver is "sqlite3" or "pgx".
type Config struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type Service struct {
	db         *sql.DB
	m          *sync.Mutex
	table_name string
	driver     string
	logger     *zap.Logger
}

const tableName = "rook_results"

const columns = "id, game_id, room_code, created_at, variant, player1, player2, player3, player4, team1_score, team2_score, winner, hands"

// New opens the database and makes sure the results table exists.
func New(ctx context.Context, cfg Config, logger *zap.Logger) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	driver := cfg.Driver
	if driver == "" {
		driver = "sqlite3"
	}
	if driver != "sqlite3" && driver != "pgx" {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	dsn := cfg.DSN
	if dsn == "" && driver == "sqlite3" {
		dsn = "./rook.db"
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	if driver == "sqlite3" {
		// In-memory sqlite is per connection.
		db.SetMaxOpenConns(1)
	}

	sqlStmt := `
	create table if not exists ` + tableName + ` (
		id varchar(64) not null primary key,
		game_id varchar(64),
		room_code varchar(16),
		created_at varchar(40),
		variant varchar(16),
		player1 varchar(64),
		player2 varchar(64),
		player3 varchar(64),
		player4 varchar(64),
		team1_score integer,
		team2_score integer,
		winner varchar(16),
		hands integer
	);
	`
	if _, err := db.ExecContext(ctx, sqlStmt); err != nil {
		db.Close()
		return nil, fmt.Errorf("create %s: %w", tableName, err)
	}

	logger.Info("results database ready", zap.String("driver", driver))
	return &Service{
		db:         db,
		table_name: tableName,
		driver:     driver,
		m:          &sync.Mutex{},
		logger:     logger,
	}, nil
}

func (s *Service) Close() error {
	return s.db.Close()
}

func (s *Service) TableName() string {
	return s.table_name
}

// rebind rewrites ? placeholders to $n for postgres.
func (s *Service) rebind(query string) string {
	if s.driver != "pgx" {
		return query
	}
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(row scanner) (MatchResult, error) {
	var result MatchResult
	err := row.Scan(
		&result.ID,
		&result.GameID,
		&result.RoomCode,
		&result.CreatedAt,
		&result.Variant,
		&result.Player1,
		&result.Player2,
		&result.Player3,
		&result.Player4,
		&result.Team1Score,
		&result.Team2Score,
		&result.Winner,
		&result.Hands)
	return result, err
}

func (s *Service) query(ctx context.Context, query string, args ...any) ([]MatchResult, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var results []MatchResult
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		results = append(results, result)
	}
	return results, rows.Err()
}

// GetAll lists archived matches, newest first.
func (s *Service) GetAll(ctx context.Context) ([]MatchResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	return s.query(ctx, "SELECT "+columns+" FROM "+s.table_name+" ORDER BY created_at DESC")
}

func (s *Service) GetByID(ctx context.Context, id string) (MatchResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	row := s.db.QueryRowContext(ctx, s.rebind("SELECT "+columns+" FROM "+s.table_name+" WHERE id = ?"), id)
	result, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return MatchResult{}, ErrNotFound
	}
	if err != nil {
		return MatchResult{}, fmt.Errorf("get result %s: %w", id, err)
	}
	return result, nil
}

func (s *Service) Insert(ctx context.Context, result MatchResult) error {
	s.m.Lock()
	defer s.m.Unlock()
	_, err := s.db.ExecContext(ctx, s.rebind("INSERT INTO "+s.table_name+
		" ("+columns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"),
		result.ID,
		result.GameID,
		result.RoomCode,
		result.CreatedAt,
		result.Variant,
		result.Player1,
		result.Player2,
		result.Player3,
		result.Player4,
		result.Team1Score,
		result.Team2Score,
		result.Winner,
		result.Hands)
	if err != nil {
		return fmt.Errorf("insert result %s: %w", result.ID, err)
	}
	s.logger.Debug("match archived", zap.String("id", result.ID), zap.String("room", result.RoomCode))
	return nil
}

// GetByPlayer lists matches in which a seat carried the given name.
func (s *Service) GetByPlayer(ctx context.Context, playerName string) ([]MatchResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	results, err := s.query(ctx, "SELECT "+columns+" FROM "+s.table_name+
		" WHERE player1 = ? OR player2 = ? OR player3 = ? OR player4 = ? ORDER BY created_at DESC",
		playerName,
		playerName,
		playerName,
		playerName)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNotFound
	}
	return results, nil
}
