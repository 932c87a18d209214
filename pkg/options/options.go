package options

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
)

type Options struct {
	DatabasePath    string
	DiscreteWheel   bool // quantize the color wheel into swatches
	Profiling       bool
	ProfilingServer string
	ExportFormat    string // one of imageconv.ImageTypes
	ExportSize      int    // exported wheel edge in pixels
	FirstBoot       bool
}

func (opts Options) InitDefault() *Options {
	return &Options{
		DatabasePath:    opts.DatabasePath,
		DiscreteWheel:   false,
		Profiling:       false,
		ProfilingServer: "http://localhost:4040",
		ExportFormat:    "PNG",
		ExportSize:      256,
		FirstBoot:       true,
	}
}

func CheckOptionsExists(db *sql.DB) (bool, error) {
	rows, err := db.Query("SELECT id FROM Options;")
	if err != nil {
		return false, fmt.Errorf("error executing statement: %w", err)
	}
	defer rows.Close()

	return rows.Next(), nil
}

func SaveOptionsToDB(db *sql.DB, options *Options) error {
	var numOptionsDb int64
	err := db.QueryRow("SELECT COUNT(*) FROM Options").Scan(&numOptionsDb)
	if err != nil {
		return fmt.Errorf("error getting number of options: %w", err)
	}

	var query string
	switch numOptionsDb {
	case 0:
		query = `
		INSERT INTO Options (
			DatabasePath, DiscreteWheel, Profiling, ProfilingServer,
			ExportFormat, ExportSize, FirstBoot, id
		) VALUES (?, ?, ?, ?, ?, ?, ?, 1);`
	case 1:
		query = `
		UPDATE Options SET
		DatabasePath = ?,
		DiscreteWheel = ?,
		Profiling = ?,
		ProfilingServer = ?,
		ExportFormat = ?,
		ExportSize = ?,
		FirstBoot = ?
		WHERE id = 1;
		`
	default:
		return fmt.Errorf("expected at most one options row, found %d", numOptionsDb)
	}

	stmt, err := db.Prepare(query)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(
		options.DatabasePath,
		options.DiscreteWheel,
		options.Profiling,
		options.ProfilingServer,
		options.ExportFormat,
		options.ExportSize,
		options.FirstBoot,
	)
	if err != nil {
		return fmt.Errorf("error executing statement: %w", err)
	}

	return nil
}

// LoadOptionsFromDB returns the stored options, or the defaults with
// FirstBoot set when nothing has been saved yet.
func LoadOptionsFromDB(db *sql.DB) (*Options, error) {
	options := &Options{}

	row := db.QueryRow(`
		SELECT DatabasePath, DiscreteWheel, Profiling, ProfilingServer,
			   ExportFormat, ExportSize
		FROM Options WHERE id = 1 LIMIT 1
	`)

	err := row.Scan(
		&options.DatabasePath,
		&options.DiscreteWheel,
		&options.Profiling,
		&options.ProfilingServer,
		&options.ExportFormat,
		&options.ExportSize,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Options{}.InitDefault(), nil
		}
		return nil, fmt.Errorf("error scanning row: %w", err)
	}
	options.FirstBoot = false

	return options, nil
}

// Store exposes the persisted options as the preference store of the color wheel.
// Every change is written through to the database.
type Store struct {
	mu       sync.Mutex
	db       *sql.DB
	opts     *Options
	discrete *bool
}

func NewStore(db *sql.DB, opts *Options) *Store {
	return &Store{db: db, opts: opts}
}

func (s *Store) DiscreteWheel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.discrete != nil {
		return *s.discrete
	}
	return s.opts.DiscreteWheel
}

// OverrideDiscreteWheel sets the flag for this run only. It is dropped by the next
// SetDiscreteWheel.
func (s *Store) OverrideDiscreteWheel(discrete bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discrete = &discrete
}

func (s *Store) SetDiscreteWheel(discrete bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discrete = nil
	s.opts.DiscreteWheel = discrete
	if err := SaveOptionsToDB(s.db, s.opts); err != nil {
		return fmt.Errorf("saving discrete wheel option: %w", err)
	}
	return nil
}

// Update applies change to the options and saves them.
func (s *Store) Update(change func(opts *Options)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	change(s.opts)
	if err := SaveOptionsToDB(s.db, s.opts); err != nil {
		return fmt.Errorf("saving options: %w", err)
	}
	return nil
}

// Options returns a copy of the current options.
func (s *Store) Options() Options {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.opts
}
