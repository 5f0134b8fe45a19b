package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	currencyRates "github.com/malusev998/currency-rates"
)

const MySQLTimeFormat = "2006-01-02 15:04:05"

type (
	IDGenerator interface {
		Generate() string
	}

	uuidGenerator struct{}

	mysqlStorage struct {
		ctx         context.Context
		db          *sql.DB
		tableName   string
		idGenerator IDGenerator
	}
)

func (uuidGenerator) Generate() string {
	return uuid.NewString()
}

// MySQLDSN builds a DSN for a TCP connection with DATETIME columns parsed into time.Time.
func MySQLDSN(user, password, addr, db string) string {
	mysqlDriverConfig := mysql.NewConfig()
	mysqlDriverConfig.User = user
	mysqlDriverConfig.Passwd = password
	mysqlDriverConfig.Addr = addr
	mysqlDriverConfig.Net = "tcp"
	mysqlDriverConfig.DBName = db
	mysqlDriverConfig.ParseTime = true

	return mysqlDriverConfig.FormatDSN()
}

func NewMySQLStorage(config MySQLConfig) (currencyRates.Storage, error) {
	db, err := sql.Open("mysql", config.ConnectionString)

	if err != nil {
		return nil, err
	}

	storage := NewMySQLStorageFromDB(config.Ctx, db, config.TableName, config.IDGenerator)

	if config.Migrate {
		if err := storage.Migrate(); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return storage, nil
}

// NewMySQLStorageFromDB wraps an open database. A nil generator produces UUIDs.
func NewMySQLStorageFromDB(ctx context.Context, db *sql.DB, tableName string, idGenerator IDGenerator) currencyRates.Storage {
	if ctx == nil {
		ctx = context.Background()
	}

	if idGenerator == nil {
		idGenerator = uuidGenerator{}
	}

	return mysqlStorage{
		ctx:         ctx,
		db:          db,
		tableName:   tableName,
		idGenerator: idGenerator,
	}
}

func (m mysqlStorage) GetStorageProviderName() string {
	return string(MySQL)
}

func (m mysqlStorage) Migrate() error {
	_, err := m.db.ExecContext(m.ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s(
		id CHAR(36) PRIMARY KEY,
		code CHAR(3) NOT NULL,
		name VARCHAR(255) NOT NULL,
		rate DOUBLE NOT NULL,
		effective_date CHAR(10) NOT NULL,
		created_at DATETIME NOT NULL,
		INDEX %s_code_created_at (code, created_at)
	);`, m.tableName, m.tableName))

	return err
}

func (m mysqlStorage) Store(snapshots []currencyRates.Snapshot) ([]currencyRates.SnapshotWithID, error) {
	tx, err := m.db.BeginTx(m.ctx, nil)

	if err != nil {
		return nil, err
	}

	stmt, err := tx.PrepareContext(m.ctx, fmt.Sprintf("INSERT INTO %s(id, code, name, rate, effective_date, created_at) VALUES(?,?,?,?,?,?);", m.tableName))

	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	defer stmt.Close()

	stored := make([]currencyRates.SnapshotWithID, 0, len(snapshots))

	for _, snapshot := range snapshots {
		id := m.idGenerator.Generate()

		_, err = stmt.ExecContext(
			m.ctx,
			id,
			snapshot.Code,
			snapshot.DisplayName,
			snapshot.RateToUSD,
			snapshot.EffectiveDate,
			snapshot.CreatedAt.UTC().Format(MySQLTimeFormat),
		)

		if err != nil {
			_ = tx.Rollback()
			return nil, err
		}

		stored = append(stored, currencyRates.SnapshotWithID{
			Snapshot: snapshot,
			ID:       id,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return stored, nil
}

// Get returns the snapshots of code, newest first. Pages start at 1.
func (m mysqlStorage) Get(code string, page, perPage int64) ([]currencyRates.SnapshotWithID, error) {
	if err := ValidatePage(page, perPage); err != nil {
		return nil, err
	}

	rows, err := m.db.QueryContext(
		m.ctx,
		fmt.Sprintf("SELECT id, code, name, rate, effective_date, created_at FROM %s WHERE code = ? ORDER BY created_at DESC LIMIT ? OFFSET ?;", m.tableName),
		code,
		perPage,
		offset(page, perPage),
	)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	snapshots := make([]currencyRates.SnapshotWithID, 0, perPage)

	for rows.Next() {
		var id string
		var snapshot currencyRates.Snapshot

		if err := rows.Scan(&id, &snapshot.Code, &snapshot.DisplayName, &snapshot.RateToUSD, &snapshot.EffectiveDate, &snapshot.CreatedAt); err != nil {
			return nil, err
		}

		snapshots = append(snapshots, currencyRates.SnapshotWithID{
			Snapshot: snapshot,
			ID:       id,
		})
	}

	return snapshots, rows.Err()
}

func (m mysqlStorage) Drop() error {
	_, err := m.db.ExecContext(m.ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s;", m.tableName))

	return err
}

func (m mysqlStorage) Close() error {
	return m.db.Close()
}
