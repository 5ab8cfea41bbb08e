package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS supply_networks (
  id          TEXT PRIMARY KEY,
  owner_id    TEXT NOT NULL,
  name        TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  nodes       JSONB NOT NULL DEFAULT '[]'::jsonb,
  edges       JSONB NOT NULL DEFAULT '[]'::jsonb,
  demands     JSONB NOT NULL DEFAULT '[]'::jsonb,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_supply_networks_owner
  ON supply_networks (owner_id, updated_at DESC);
`

// PostgresRepository keeps each network in one row with jsonb graph columns.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, postgresSchema); err != nil {
		return fmt.Errorf("ensure supply_networks schema: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Create inserts a new network for the owner. Ids are random text ids; a
// collision on the primary key is retried.
func (r *PostgresRepository) Create(ctx context.Context, owner string, n domain.Network) (domain.Network, error) {
	if strings.TrimSpace(owner) == "" {
		return domain.Network{}, fmt.Errorf("owner required")
	}
	name := n.Name
	if strings.TrimSpace(name) == "" {
		name = domain.DefaultNetworkName
	}
	nodes, edges, demands, err := encodeGraph(n.Graph)
	if err != nil {
		return domain.Network{}, err
	}

	for i := 0; i < 5; i++ {
		id, err := newNetworkID()
		if err != nil {
			return domain.Network{}, err
		}

		const q = `
INSERT INTO supply_networks (id, owner_id, name, description, nodes, edges, demands)
VALUES ($1, $2, $3, $4, $5::jsonb, $6::jsonb, $7::jsonb)
RETURNING created_at, updated_at;
`
		out := n
		out.ID, out.OwnerID, out.Name = id, owner, name
		err = r.db.QueryRowContext(ctx, q, id, owner, name, n.Description, nodes, edges, demands).
			Scan(&out.CreatedAt, &out.UpdatedAt)
		if err == nil {
			out.Graph = n.Graph.Clone()
			return out, nil
		}

		// unique violation on id → retry
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			continue
		}
		return domain.Network{}, fmt.Errorf("insert network: %w", err)
	}
	return domain.Network{}, fmt.Errorf("failed to generate unique network id")
}

func (r *PostgresRepository) Update(ctx context.Context, owner, id string, n domain.Network) error {
	nodes, edges, demands, err := encodeGraph(n.Graph)
	if err != nil {
		return err
	}
	const q = `
UPDATE supply_networks
SET name = $3, description = $4, nodes = $5::jsonb, edges = $6::jsonb, demands = $7::jsonb, updated_at = now()
WHERE id = $1 AND owner_id = $2;
`
	res, err := r.db.ExecContext(ctx, q, id, owner, n.Name, n.Description, nodes, edges, demands)
	if err != nil {
		return fmt.Errorf("update network: %w", err)
	}
	return r.checkAffected(ctx, res, id)
}

func (r *PostgresRepository) Get(ctx context.Context, owner, id string) (domain.Network, error) {
	const q = `
SELECT id, owner_id, name, description, nodes::text, edges::text, demands::text, created_at, updated_at
FROM supply_networks
WHERE id = $1;
`
	var n domain.Network
	var nodes, edges, demands string
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&n.ID, &n.OwnerID, &n.Name, &n.Description,
		&nodes, &edges, &demands,
		&n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Network{}, domain.ErrNetworkNotFound
		}
		return domain.Network{}, fmt.Errorf("get network: %w", err)
	}
	if n.OwnerID != owner {
		return domain.Network{}, domain.ErrAccessDenied
	}
	if n.Graph, err = decodeGraph(nodes, edges, demands); err != nil {
		return domain.Network{}, err
	}
	return n, nil
}

func (r *PostgresRepository) List(ctx context.Context, owner string) ([]domain.Summary, error) {
	const q = `
SELECT id, name,
       jsonb_array_length(nodes), jsonb_array_length(edges), jsonb_array_length(demands),
       updated_at
FROM supply_networks
WHERE owner_id = $1
ORDER BY updated_at DESC;
`
	rows, err := r.db.QueryContext(ctx, q, owner)
	if err != nil {
		return nil, fmt.Errorf("list networks: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Summary, 0, 16)
	for rows.Next() {
		var s domain.Summary
		if err := rows.Scan(&s.ID, &s.Name, &s.NodeCount, &s.EdgeCount, &s.DemandCount, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, owner, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM supply_networks WHERE id = $1 AND owner_id = $2;`, id, owner)
	if err != nil {
		return fmt.Errorf("delete network: %w", err)
	}
	return r.checkAffected(ctx, res, id)
}

func (r *PostgresRepository) Rename(ctx context.Context, owner, id, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name required")
	}
	const q = `
UPDATE supply_networks
SET name = $3, updated_at = now()
WHERE id = $1 AND owner_id = $2;
`
	res, err := r.db.ExecContext(ctx, q, id, owner, name)
	if err != nil {
		return fmt.Errorf("rename network: %w", err)
	}
	return r.checkAffected(ctx, res, id)
}

// checkAffected turns a zero-row write into not-found or access-denied.
func (r *PostgresRepository) checkAffected(ctx context.Context, res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	var owner string
	err = r.db.QueryRowContext(ctx, `SELECT owner_id FROM supply_networks WHERE id = $1;`, id).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNetworkNotFound
	}
	if err != nil {
		return err
	}
	return domain.ErrAccessDenied
}

func encodeGraph(g domain.Graph) (nodes, edges, demands string, err error) {
	parts := []any{nonNil(g.Nodes), nonNil(g.Edges), nonNil(g.Demands)}
	out := make([]string, len(parts))
	for i, p := range parts {
		b, err := json.Marshal(p)
		if err != nil {
			return "", "", "", fmt.Errorf("encode graph: %w", err)
		}
		out[i] = string(b)
	}
	return out[0], out[1], out[2], nil
}

func decodeGraph(nodes, edges, demands string) (domain.Graph, error) {
	g := domain.Graph{Nodes: []domain.Node{}, Edges: []domain.Edge{}, Demands: []domain.Demand{}}
	if err := json.Unmarshal([]byte(nodes), &g.Nodes); err != nil {
		return domain.Graph{}, fmt.Errorf("decode nodes: %w", err)
	}
	if err := json.Unmarshal([]byte(edges), &g.Edges); err != nil {
		return domain.Graph{}, fmt.Errorf("decode edges: %w", err)
	}
	if err := json.Unmarshal([]byte(demands), &g.Demands); err != nil {
		return domain.Graph{}, fmt.Errorf("decode demands: %w", err)
	}
	return g, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

var _ Repository = (*PostgresRepository)(nil)
