package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

// AnalysisRecord is one saved analysis: the submitted inputs and the full
// result, both kept as JSON exactly as served to the client.
type AnalysisRecord struct {
	ID        int             `json:"id"`
	Project   string          `json:"project"`
	CreatedAt time.Time       `json:"created_at"`
	Inputs    json.RawMessage `json:"inputs"`
	Result    json.RawMessage `json:"result"`
}

type Repository interface {
	SaveAnalysis(ctx context.Context, project string, inputs, result []byte) (int, error)
	GetAnalysis(ctx context.Context, id int) (AnalysisRecord, error)
	ListAnalyses(ctx context.Context, project string, limit int) ([]AnalysisRecord, error)
}

type PostgresAnalysisRepository struct {
	db *sql.DB
}

func NewPostgresAnalysisDB(db *sql.DB) *PostgresAnalysisRepository {
	return &PostgresAnalysisRepository{db: db}
}

func (r *PostgresAnalysisRepository) SaveAnalysis(ctx context.Context, project string, inputs, result []byte) (int, error) {
	var id int
	query := "INSERT INTO analyses (project, inputs, result) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, project, inputs, result).Scan(&id)
	return id, err
}

func (r *PostgresAnalysisRepository) GetAnalysis(ctx context.Context, id int) (AnalysisRecord, error) {
	var rec AnalysisRecord
	query := "SELECT id, project, created_at, inputs, result FROM analyses WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&rec.ID, &rec.Project, &rec.CreatedAt, &rec.Inputs, &rec.Result)
	return rec, err
}

func (r *PostgresAnalysisRepository) ListAnalyses(ctx context.Context, project string, limit int) ([]AnalysisRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	query := "SELECT id, project, created_at, inputs, result FROM analyses WHERE project=$1 ORDER BY created_at DESC LIMIT $2"
	rows, err := r.db.QueryContext(ctx, query, project, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []AnalysisRecord
	for rows.Next() {
		var rec AnalysisRecord
		if err := rows.Scan(&rec.ID, &rec.Project, &rec.CreatedAt, &rec.Inputs, &rec.Result); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// InitDB opens the analyses database from DATABASE_URL. sslmode is forced
// on unless the URL already names one.
func InitDB() *sql.DB {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		connStr = "user=postgres dbname=postgres password=password sslmode=disable"
	}
	if !strings.Contains(connStr, "sslmode=") {
		if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
			connStr = connStr + "?sslmode=require"
		} else {
			connStr = connStr + " sslmode=require"
		}
	}
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("DB configuration error:", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err = db.Ping(); err != nil {
		log.Fatal("Database not responding:", err)
	}
	return db
}
