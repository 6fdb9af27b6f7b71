package grampix

import (
	"bytes"
	"crypto/sha1"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bodgit/grampix/raster"
	"github.com/bodgit/grampix/rasterfile"
	_ "github.com/mattn/go-sqlite3"
)

var errNoArchive = errors.New("grampix: no archive")

// ArchiveDB stores texts alongside the rasters they were encoded into.
// Identical rasters are only stored once.
type ArchiveDB struct {
	db *sql.DB
}

// Entry is a single archived text.
type Entry struct {
	ID      int64
	Text    string
	Options Options
	Raster  *raster.Raster
}

// NewArchiveDB opens, creating if necessary, the archive in file.
func NewArchiveDB(file string) (*ArchiveDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", file))
	if err != nil {
		return nil, err
	}
	// Writers queue up behind one connection rather than fight over locks
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS raster (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, width INTEGER NOT NULL, height INTEGER NOT NULL, data BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS text (id INTEGER PRIMARY KEY NOT NULL, body TEXT NOT NULL, mapping TEXT NOT NULL, style TEXT NOT NULL, compress INTEGER NOT NULL, separator TEXT NOT NULL, side INTEGER NOT NULL, raster_id INTEGER NOT NULL, FOREIGN KEY(raster_id) REFERENCES raster(id))"); err != nil {
		db.Close()
		return nil, err
	}

	return &ArchiveDB{
		db: db,
	}, nil
}

// Close closes the archive.
func (db *ArchiveDB) Close() error {
	return db.db.Close()
}

func addRaster(tx *sql.Tx, r *raster.Raster) (int64, error) {
	b := new(bytes.Buffer)
	if err := rasterfile.Encode(b, r, rasterfile.Float); err != nil {
		return 0, err
	}
	sha := fmt.Sprintf("%X", sha1.Sum(b.Bytes()))

	var id int64
	switch err := tx.QueryRow("SELECT id FROM raster WHERE sha1 = ?", sha).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := tx.Exec("INSERT INTO raster (sha1, width, height, data) VALUES (?, ?, ?, ?)", sha, r.Width(), r.Height(), b.Bytes())
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	case nil:
		return id, nil
	default:
		return 0, err
	}
}

// Save stores text, the options it was encoded with and the resulting
// raster, returning the id of the new entry.
func (db *ArchiveDB) Save(text string, o Options, r *raster.Raster) (int64, error) {
	tx, err := db.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	rasterID, err := addRaster(tx, r)
	if err != nil {
		return 0, err
	}

	result, err := tx.Exec("INSERT INTO text (body, mapping, style, compress, separator, side, raster_id) VALUES (?, ?, ?, ?, ?, ?, ?)", text, o.Mapping, o.Style, o.Compress, o.Separator, o.Side, rasterID)
	if err != nil {
		return 0, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	return id, tx.Commit()
}

const selectEntry = "SELECT t.id, t.body, t.mapping, t.style, t.compress, t.separator, t.side, r.data FROM text AS t JOIN raster AS r ON t.raster_id = r.id"

func scanEntry(row *sql.Row) (*Entry, error) {
	var e Entry
	var data []byte
	switch err := row.Scan(&e.ID, &e.Text, &e.Options.Mapping, &e.Options.Style, &e.Options.Compress, &e.Options.Separator, &e.Options.Side, &data); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		r, err := rasterfile.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		e.Raster = r
		return &e, nil
	default:
		return nil, err
	}
}

// Find returns the entry with the given id, or nil if there isn't one.
func (db *ArchiveDB) Find(id int64) (*Entry, error) {
	return scanEntry(db.db.QueryRow(selectEntry+" WHERE t.id = ?", id))
}

// FindByText returns the most recent entry for text, or nil if there isn't
// one.
func (db *ArchiveDB) FindByText(text string) (*Entry, error) {
	return scanEntry(db.db.QueryRow(selectEntry+" WHERE t.body = ? ORDER BY t.id DESC LIMIT 1", text))
}

// Count returns the number of texts and distinct rasters in the archive.
func (db *ArchiveDB) Count() (texts, rasters int, err error) {
	if err = db.db.QueryRow("SELECT COUNT(*) FROM text").Scan(&texts); err != nil {
		return
	}
	err = db.db.QueryRow("SELECT COUNT(*) FROM raster").Scan(&rasters)
	return
}
