package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mailsift/mailsift/internal/mail"
)

const defaultTable = "emails"

// Options holds the Postgres connection coordinates. Table defaults to
// "emails" when empty.
type Options struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	TLS      bool
	Table    string
}

func (o Options) connString() string {
	sslMode := "disable"
	if o.TLS {
		sslMode = "require"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		o.User, o.Password, o.Host, o.Port, o.Database, sslMode)
}

// Postgres is the production record store.
type Postgres struct {
	pool  *pgxpool.Pool
	table string
}

// NewPostgres connects, pings, and ensures the record table exists.
func NewPostgres(ctx context.Context, opts Options) (*Postgres, error) {
	cfg, err := pgxpool.ParseConfig(opts.connString())
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		return nil, fmt.Errorf("connect to database: %w", pingErr)
	}
	table := opts.Table
	if table == "" {
		table = defaultTable
	}
	p := &Postgres{pool: pool, table: table}
	if schemaErr := p.ensureSchema(ctx); schemaErr != nil {
		pool.Close()
		return nil, schemaErr
	}
	return p, nil
}

// Close releases the connection pool.
func (p *Postgres) Close() {
	p.pool.Close()
}

func (p *Postgres) ensureSchema(ctx context.Context) error {
	ddl := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			sender TEXT NOT NULL DEFAULT '',
			recipient TEXT NOT NULL DEFAULT '',
			subject TEXT NOT NULL DEFAULT '',
			received_at TIMESTAMPTZ,
			message TEXT NOT NULL DEFAULT ''
		)`, p.ident())
	if _, err := p.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("create table %s: %w", p.table, err)
	}
	return nil
}

// UpsertIfAbsent inserts the record unless its ID is already present. The
// existing row is left untouched and no error is reported.
func (p *Postgres) UpsertIfAbsent(ctx context.Context, rec mail.Record) error {
	if rec.ID == "" {
		return fmt.Errorf("record id must not be empty")
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (id, sender, recipient, subject, received_at, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`, p.ident())
	if _, err := p.pool.Exec(ctx, query,
		rec.ID, rec.Sender, rec.Recipient, rec.Subject, rec.ReceivedAt, rec.Message); err != nil {
		return fmt.Errorf("insert record %s: %w", rec.ID, err)
	}
	return nil
}

// ListAll returns every stored record, newest first with NULL dates last
// and ties broken by ID, so apply runs process records in a stable order.
func (p *Postgres) ListAll(ctx context.Context) ([]mail.Record, error) {
	query := fmt.Sprintf(`
		SELECT id, sender, recipient, subject, received_at, message
		FROM %s
		ORDER BY received_at DESC NULLS LAST, id`, p.ident())
	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select records: %w", err)
	}
	defer rows.Close()

	var records []mail.Record
	for rows.Next() {
		var rec mail.Record
		var receivedAt *time.Time
		if scanErr := rows.Scan(&rec.ID, &rec.Sender, &rec.Recipient, &rec.Subject, &receivedAt, &rec.Message); scanErr != nil {
			return nil, fmt.Errorf("scan record: %w", scanErr)
		}
		rec.ReceivedAt = receivedAt
		records = append(records, rec)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("iterate records: %w", rowsErr)
	}
	return records, nil
}

func (p *Postgres) ident() string {
	return pgx.Identifier{p.table}.Sanitize()
}

var _ Store = (*Postgres)(nil)
