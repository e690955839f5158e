package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"property-matcher/book"
	"property-matcher/models"
	"property-matcher/utils"
)

const postgresSource = "postgres"

// PostgresStore persists the book to PostgreSQL. List order is kept in a
// position column.
type PostgresStore struct {
	db     *sql.DB
	logger *utils.Logger
}

// NewPostgresStore opens a connection to PostgreSQL, runs schema migrations,
// and returns a ready-to-use PostgresStore.
func NewPostgresStore(dsn string, retry *utils.RetryConfig) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	if retry == nil {
		retry = &utils.RetryConfig{MaxAttempts: 1}
	}
	if err := retry.Do("postgres ping", db.Ping); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}

	ps := &PostgresStore{db: db, logger: retry.Logger}
	if ps.logger == nil {
		ps.logger = utils.NewNopLogger()
	}
	if err := ps.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}
	return ps, nil
}

func (ps *PostgresStore) migrate() error {
	_, err := ps.db.Exec(`
		CREATE TABLE IF NOT EXISTS properties (
			position     INTEGER PRIMARY KEY,
			name         TEXT    NOT NULL,
			address      TEXT    NOT NULL,
			seller_name  TEXT    NOT NULL,
			seller_phone TEXT    NOT NULL,
			seller_email TEXT    NOT NULL,
			price_cents  BIGINT  NOT NULL CHECK (price_cents >= 0),
			tags         TEXT[]  NOT NULL DEFAULT '{}',
			UNIQUE (name, address)
		);

		CREATE TABLE IF NOT EXISTS buyers (
			position     INTEGER PRIMARY KEY,
			name         TEXT    NOT NULL UNIQUE,
			phone        TEXT    NOT NULL,
			email        TEXT    NOT NULL,
			budget_cents BIGINT  NOT NULL CHECK (budget_cents >= 0),
			tags         TEXT[]  NOT NULL DEFAULT '{}'
		);
	`)
	return err
}

var (
	propertyColumns = []string{"position", "name", "address", "seller_name", "seller_phone", "seller_email", "price_cents", "tags"}
	buyerColumns    = []string{"position", "name", "phone", "email", "budget_cents", "tags"}
)

const batchSize = 50

// Save replaces all stored rows in a single transaction.
func (ps *PostgresStore) Save(ab *book.AddressBook) error {
	tx, err := ps.db.Begin()
	if err != nil {
		return &IOError{Op: "begin", Path: postgresSource, Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM properties"); err != nil {
		return &IOError{Op: "clear properties", Path: postgresSource, Err: err}
	}
	if _, err := tx.Exec("DELETE FROM buyers"); err != nil {
		return &IOError{Op: "clear buyers", Path: postgresSource, Err: err}
	}

	if err := insertBatches(tx, "properties", propertyColumns, propertyRows(ab.Properties())); err != nil {
		return &IOError{Op: "insert properties", Path: postgresSource, Err: err}
	}
	if err := insertBatches(tx, "buyers", buyerColumns, buyerRows(ab.Buyers())); err != nil {
		return &IOError{Op: "insert buyers", Path: postgresSource, Err: err}
	}

	if err := tx.Commit(); err != nil {
		return &IOError{Op: "commit", Path: postgresSource, Err: err}
	}
	ps.logger.Debug("[storage] Saved %d properties and %d buyers to PostgreSQL",
		len(ab.Properties()), len(ab.Buyers()))
	return nil
}

func propertyRows(properties []models.Property) [][]any {
	rows := make([][]any, 0, len(properties))
	for i, p := range properties {
		rows = append(rows, []any{
			i, string(p.Name()), string(p.Address()),
			string(p.Seller().Name()), string(p.Seller().Phone()), string(p.Seller().Email()),
			p.Price().Cents(), pq.Array(p.Tags().Strings()),
		})
	}
	return rows
}

func buyerRows(buyers []models.Buyer) [][]any {
	rows := make([][]any, 0, len(buyers))
	for i, b := range buyers {
		rows = append(rows, []any{
			i, string(b.Name()), string(b.Phone()), string(b.Email()),
			b.MaxPrice().Cents(), pq.Array(b.Tags().Strings()),
		})
	}
	return rows
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func insertBatches(db execer, table string, columns []string, rows [][]any) error {
	for i := 0; i < len(rows); i += batchSize {
		end := i + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		query, args := buildInsert(table, columns, rows[i:end])
		if _, err := db.Exec(query, args...); err != nil {
			return err
		}
	}
	return nil
}

// buildInsert renders a multi-row INSERT with numbered placeholders.
func buildInsert(table string, columns []string, batch [][]any) (string, []any) {
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]any, 0, len(batch)*len(columns))

	for idx, row := range batch {
		base := idx * len(columns)
		placeholders := make([]string, len(columns))
		for c := range columns {
			placeholders[c] = fmt.Sprintf("$%d", base+c+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ",")+")")
		valueArgs = append(valueArgs, row...)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		table, strings.Join(columns, ", "), strings.Join(valueStrings, ","))
	return query, valueArgs
}

// Load reads both tables in position order and rebuilds the book.
func (ps *PostgresStore) Load() (*book.AddressBook, error) {
	properties, err := ps.loadProperties()
	if err != nil {
		return nil, err
	}
	buyers, err := ps.loadBuyers()
	if err != nil {
		return nil, err
	}
	ab, err := book.FromEntities(properties, buyers)
	if err != nil {
		return nil, &DataCorruptionError{Source: postgresSource, Err: err}
	}
	return ab, nil
}

func (ps *PostgresStore) loadProperties() ([]models.Property, error) {
	rows, err := ps.db.Query(`
		SELECT name, address, seller_name, seller_phone, seller_email, price_cents, tags
		FROM properties
		ORDER BY position
	`)
	if err != nil {
		return nil, &IOError{Op: "fetch properties", Path: postgresSource, Err: err}
	}
	defer rows.Close()

	var out []models.Property
	for rows.Next() {
		var rec propertyRecord
		var cents int64
		if err := rows.Scan(&rec.Name, &rec.Address, &rec.SellerName, &rec.SellerPhone,
			&rec.SellerEmail, &cents, pq.Array(&rec.Tags)); err != nil {
			return nil, &IOError{Op: "scan property", Path: postgresSource, Err: err}
		}
		price, err := models.PriceFromCents(cents)
		if err != nil {
			return nil, &DataCorruptionError{Source: postgresSource, Err: err}
		}
		rec.Price = price.String()
		p, err := rec.toProperty()
		if err != nil {
			return nil, &DataCorruptionError{Source: postgresSource, Err: err}
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &IOError{Op: "fetch properties", Path: postgresSource, Err: err}
	}
	return out, nil
}

func (ps *PostgresStore) loadBuyers() ([]models.Buyer, error) {
	rows, err := ps.db.Query(`
		SELECT name, phone, email, budget_cents, tags
		FROM buyers
		ORDER BY position
	`)
	if err != nil {
		return nil, &IOError{Op: "fetch buyers", Path: postgresSource, Err: err}
	}
	defer rows.Close()

	var out []models.Buyer
	for rows.Next() {
		var rec buyerRecord
		var cents int64
		if err := rows.Scan(&rec.Name, &rec.Phone, &rec.Email, &cents, pq.Array(&rec.Tags)); err != nil {
			return nil, &IOError{Op: "scan buyer", Path: postgresSource, Err: err}
		}
		budget, err := models.PriceFromCents(cents)
		if err != nil {
			return nil, &DataCorruptionError{Source: postgresSource, Err: err}
		}
		rec.Budget = budget.String()
		b, err := rec.toBuyer()
		if err != nil {
			return nil, &DataCorruptionError{Source: postgresSource, Err: err}
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, &IOError{Op: "fetch buyers", Path: postgresSource, Err: err}
	}
	return out, nil
}

func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
