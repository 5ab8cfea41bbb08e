package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // pure Go driver

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
)

// SQLiteRepository is the single-process store used by the CLI and local runs.
// The path is a file path or ":memory:".
type SQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteRepository(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// one connection keeps ":memory:" databases shared and serialises writers
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS supply_networks (
			id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			nodes TEXT NOT NULL,
			edges TEXT NOT NULL,
			demands TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_supply_networks_owner
		ON supply_networks(owner_id, updated_at);
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}
	return &SQLiteRepository{db: db, now: time.Now}, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SQLiteRepository) Create(ctx context.Context, owner string, n domain.Network) (domain.Network, error) {
	if strings.TrimSpace(owner) == "" {
		return domain.Network{}, fmt.Errorf("owner required")
	}
	nodes, edges, demands, err := encodeGraph(n.Graph)
	if err != nil {
		return domain.Network{}, err
	}
	now := r.now().UTC()
	out := n
	out.Graph = n.Graph.Clone()
	out.ID = uuid.New().String()
	out.OwnerID = owner
	if strings.TrimSpace(out.Name) == "" {
		out.Name = domain.DefaultNetworkName
	}
	out.CreatedAt, out.UpdatedAt = now, now

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO supply_networks (id, owner_id, name, description, nodes, edges, demands, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, out.ID, owner, out.Name, out.Description, nodes, edges, demands, now.UnixNano(), now.UnixNano())
	if err != nil {
		return domain.Network{}, fmt.Errorf("insert network: %w", err)
	}
	return out, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, owner, id string, n domain.Network) error {
	nodes, edges, demands, err := encodeGraph(n.Graph)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE supply_networks
		SET name = ?, description = ?, nodes = ?, edges = ?, demands = ?, updated_at = ?
		WHERE id = ? AND owner_id = ?
	`, n.Name, n.Description, nodes, edges, demands, r.now().UTC().UnixNano(), id, owner)
	if err != nil {
		return fmt.Errorf("update network: %w", err)
	}
	return r.checkAffected(ctx, res, id)
}

func (r *SQLiteRepository) Get(ctx context.Context, owner, id string) (domain.Network, error) {
	var n domain.Network
	var nodes, edges, demands string
	var created, updated int64
	err := r.db.QueryRowContext(ctx, `
		SELECT id, owner_id, name, description, nodes, edges, demands, created_at, updated_at
		FROM supply_networks WHERE id = ?
	`, id).Scan(&n.ID, &n.OwnerID, &n.Name, &n.Description, &nodes, &edges, &demands, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Network{}, domain.ErrNetworkNotFound
	}
	if err != nil {
		return domain.Network{}, fmt.Errorf("get network: %w", err)
	}
	if n.OwnerID != owner {
		return domain.Network{}, domain.ErrAccessDenied
	}
	if n.Graph, err = decodeGraph(nodes, edges, demands); err != nil {
		return domain.Network{}, err
	}
	n.CreatedAt = time.Unix(0, created).UTC()
	n.UpdatedAt = time.Unix(0, updated).UTC()
	return n, nil
}

func (r *SQLiteRepository) List(ctx context.Context, owner string) ([]domain.Summary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, json_array_length(nodes), json_array_length(edges), json_array_length(demands), updated_at
		FROM supply_networks
		WHERE owner_id = ?
		ORDER BY updated_at DESC
	`, owner)
	if err != nil {
		return nil, fmt.Errorf("list networks: %w", err)
	}
	defer rows.Close()

	out := []domain.Summary{}
	for rows.Next() {
		var s domain.Summary
		var updated int64
		if err := rows.Scan(&s.ID, &s.Name, &s.NodeCount, &s.EdgeCount, &s.DemandCount, &updated); err != nil {
			return nil, err
		}
		s.UpdatedAt = time.Unix(0, updated).UTC()
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) Delete(ctx context.Context, owner, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM supply_networks WHERE id = ? AND owner_id = ?`, id, owner)
	if err != nil {
		return fmt.Errorf("delete network: %w", err)
	}
	return r.checkAffected(ctx, res, id)
}

func (r *SQLiteRepository) Rename(ctx context.Context, owner, id, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name required")
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE supply_networks SET name = ?, updated_at = ? WHERE id = ? AND owner_id = ?
	`, name, r.now().UTC().UnixNano(), id, owner)
	if err != nil {
		return fmt.Errorf("rename network: %w", err)
	}
	return r.checkAffected(ctx, res, id)
}

func (r *SQLiteRepository) checkAffected(ctx context.Context, res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	var owner string
	err = r.db.QueryRowContext(ctx, `SELECT owner_id FROM supply_networks WHERE id = ?`, id).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNetworkNotFound
	}
	if err != nil {
		return err
	}
	return domain.ErrAccessDenied
}

var _ Repository = (*SQLiteRepository)(nil)
