package topology

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/calder-analytics/cascade/pkg/cascade"
	"github.com/calder-analytics/cascade/pkg/logging"
)

// PGProvider serves node rosters from PostgreSQL. Rosters are read fresh per
// lookup; the table is owned by whatever system maintains the network model,
// this provider never writes node attributes.
type PGProvider struct {
	pool     *pgxpool.Pool
	fallback []cascade.NetworkNode
	timeout  time.Duration
	logger   logging.Logger
}

// NewPGProvider connects to PostgreSQL and prepares the network_nodes table.
func NewPGProvider(ctx context.Context, databaseURL string, logger logging.Logger) (*PGProvider, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	if logger == nil {
		logger = logging.DefaultLogger()
	}

	p := &PGProvider{
		pool:     pool,
		fallback: fallbackTopology(),
		timeout:  5 * time.Second,
		logger:   logger.With(logging.Component("topology_pg")),
	}

	if err := p.migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return p, nil
}

func (p *PGProvider) migrate(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS network_nodes (
			id           TEXT PRIMARY KEY,
			name         TEXT NOT NULL,
			node_type    TEXT NOT NULL,
			region       TEXT NOT NULL,
			risk_level   TEXT NOT NULL,
			impact_score DOUBLE PRECISION NOT NULL,
			position     INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_network_nodes_region ON network_nodes (region, position);
	`)
	return err
}

// GetTopology returns the roster for a region in stored position order. Query
// failures and unknown regions both resolve to the fallback roster; a region
// lookup must never fail a cascade analysis outright.
func (p *PGProvider) GetTopology(region string) []cascade.NetworkNode {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	rows, err := p.pool.Query(ctx, `
		SELECT id, name, node_type, region, risk_level, impact_score
		FROM network_nodes
		WHERE region = $1
		ORDER BY position, id
	`, region)
	if err != nil {
		p.logger.Error("topology query failed", logging.Region(region), logging.Error(err))
		return p.fallbackCopy()
	}
	defer rows.Close()

	var roster []cascade.NetworkNode
	for rows.Next() {
		var node cascade.NetworkNode
		if err := rows.Scan(&node.ID, &node.Name, &node.Type, &node.Region, &node.RiskLevel, &node.ImpactScore); err != nil {
			p.logger.Error("topology row scan failed", logging.Region(region), logging.Error(err))
			return p.fallbackCopy()
		}
		roster = append(roster, node)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("topology rows failed", logging.Region(region), logging.Error(err))
		return p.fallbackCopy()
	}

	if len(roster) == 0 {
		return p.fallbackCopy()
	}
	return roster
}

func (p *PGProvider) fallbackCopy() []cascade.NetworkNode {
	out := make([]cascade.NetworkNode, len(p.fallback))
	copy(out, p.fallback)
	return out
}

// Regions returns the distinct regions present in the database, sorted by the
// query. Failures resolve to an empty list.
func (p *PGProvider) Regions() []string {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	rows, err := p.pool.Query(ctx, `SELECT DISTINCT region FROM network_nodes ORDER BY region`)
	if err != nil {
		p.logger.Error("region query failed", logging.Error(err))
		return nil
	}
	defer rows.Close()

	var regions []string
	for rows.Next() {
		var region string
		if err := rows.Scan(&region); err != nil {
			p.logger.Error("region row scan failed", logging.Error(err))
			return nil
		}
		regions = append(regions, region)
	}
	return regions
}

// Ping checks database connectivity.
func (p *PGProvider) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close closes the connection pool.
func (p *PGProvider) Close() {
	p.pool.Close()
}
