package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"

	"cyltrack-rest-api/internal/model"

	_ "modernc.org/sqlite" // Pure Go SQLite driver - no CGO required
)

// SQLiteInventoryRepository implements InventoryRepository using SQLite.
// Thread-safe with WAL mode for high-concurrency reads.
type SQLiteInventoryRepository struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteInventoryRepository creates a new SQLite inventory repository.
// dbPath is the path to the SQLite database file (e.g., "./data/inventory.db")
func NewSQLiteInventoryRepository(dbPath string) (*SQLiteInventoryRepository, error) {
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000", dbPath)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite: %w", err)
	}

	// SQLite only supports 1 writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	log.Printf("[SQLiteInventoryRepository] Initialized with database: %s", dbPath)
	return &SQLiteInventoryRepository{db: db}, nil
}

// createTables creates the inventory entries table.
func createTables(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS inventory_entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		quantity INTEGER NOT NULL,
		date_added DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_date_added ON inventory_entries(date_added);
	`
	_, err := db.Exec(query)
	return err
}

// Get retrieves the inventory record. The running stock total is the sum of
// all recorded additions; entries are returned in insertion order.
func (r *SQLiteInventoryRepository) Get(ctx context.Context) (*model.Inventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows, err := r.db.QueryContext(ctx, `SELECT quantity, date_added FROM inventory_entries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	defer rows.Close()

	inv := &model.Inventory{}
	for rows.Next() {
		var entry model.InventoryEntry
		if err := rows.Scan(&entry.Quantity, &entry.DateAdded); err != nil {
			return nil, fmt.Errorf("failed to scan inventory entry: %w", err)
		}
		inv.CurrentStock += entry.Quantity
		inv.History = append(inv.History, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inventory entries: %w", err)
	}

	if len(inv.History) == 0 {
		return nil, ErrNotFound
	}
	return inv, nil
}

// AddEntry appends a history entry.
func (r *SQLiteInventoryRepository) AddEntry(ctx context.Context, entry model.InventoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	query := `INSERT INTO inventory_entries (quantity, date_added) VALUES (?, ?)`
	_, err := r.db.ExecContext(ctx, query, entry.Quantity, entry.DateAdded)
	if err != nil {
		return fmt.Errorf("failed to add inventory entry: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (r *SQLiteInventoryRepository) Close() error {
	return r.db.Close()
}

// Ensure SQLiteInventoryRepository implements InventoryRepository
var _ InventoryRepository = (*SQLiteInventoryRepository)(nil)
