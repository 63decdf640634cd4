package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/diljotgrewal/whatshap/core"
)

// SaveReadSet batch-inserts every registered read and its observations using
// the Appender API. All reads must carry an id; an unregistered read aborts
// the save before anything is written.
func (s *Store) SaveReadSet(rs *core.ReadSet) error {
	if rs.Len() == 0 {
		return nil
	}

	for r := range rs.All() {
		if r.ID() == core.UnsetID {
			return fmt.Errorf("read %q has no id; register it before saving", r.Name())
		}
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	if err := s.appendReads(conn, rs); err != nil {
		return err
	}
	return s.appendVariants(conn, rs)
}

func (s *Store) appendReads(conn *sql.Conn, rs *core.ReadSet) error {
	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "reads")
		return err
	}); err != nil {
		return fmt.Errorf("create reads appender: %w", err)
	}
	defer appender.Close()

	for r := range rs.All() {
		if err := appender.AppendRow(
			int64(r.ID()), r.Name(), int32(r.MappingQuality()),
		); err != nil {
			return fmt.Errorf("append read %q: %w", r.Name(), err)
		}
	}

	return appender.Flush()
}

func (s *Store) appendVariants(conn *sql.Conn, rs *core.ReadSet) error {
	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "read_variants")
		return err
	}); err != nil {
		return fmt.Errorf("create read_variants appender: %w", err)
	}
	defer appender.Close()

	for r := range rs.All() {
		for i := 0; i < r.VariantCount(); i++ {
			e := r.Entry(i)
			if err := appender.AppendRow(
				int64(r.ID()), r.Position(i), string(r.Base(i)),
				int32(e.Allele()), int32(e.Quality()),
			); err != nil {
				return fmt.Errorf("append variant for read %q: %w", r.Name(), err)
			}
		}
	}

	return appender.Flush()
}

// LoadReadSet reconstructs a read set from the store. Reads come back in
// stored-id order and are re-registered, so ids survive a round trip as long
// as they were dense when saved. Each read's observations are sorted by
// position.
func (s *Store) LoadReadSet() (*core.ReadSet, error) {
	rows, err := s.db.Query("SELECT id, name, mapq FROM reads ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query reads: %w", err)
	}
	defer rows.Close()

	rs := core.NewReadSet()
	var ids []int64
	for rows.Next() {
		var id int64
		var name string
		var mapq int32
		if err := rows.Scan(&id, &name, &mapq); err != nil {
			return nil, fmt.Errorf("scan read: %w", err)
		}
		rs.Register(core.NewRead(name, int(mapq)))
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reads: %w", err)
	}

	for i, storedID := range ids {
		r := rs.Get(i)
		if err := s.loadVariants(storedID, r); err != nil {
			return nil, err
		}
		r.SortVariants()
	}

	return rs, nil
}

func (s *Store) loadVariants(storedID int64, r *core.Read) error {
	rows, err := s.db.Query(
		"SELECT position, base, allele, quality FROM read_variants WHERE read_id = ?",
		storedID)
	if err != nil {
		return fmt.Errorf("query variants for read %q: %w", r.Name(), err)
	}
	defer rows.Close()

	for rows.Next() {
		var position int64
		var base string
		var allele, quality int32
		if err := rows.Scan(&position, &base, &allele, &quality); err != nil {
			return fmt.Errorf("scan variant: %w", err)
		}
		var b byte
		if len(base) > 0 {
			b = base[0]
		}
		r.AddVariant(position, b, int(allele), int(quality))
	}
	return rows.Err()
}

// Stats summarizes the stored read set.
type Stats struct {
	ReadCount    int64
	VariantCount int64
	MinPosition  int64
	MaxPosition  int64
	HasPositions bool
}

// Stats returns read and observation counts plus the observed position span.
func (s *Store) Stats() (Stats, error) {
	var st Stats

	if err := s.db.QueryRow("SELECT COUNT(*) FROM reads").Scan(&st.ReadCount); err != nil {
		return st, fmt.Errorf("count reads: %w", err)
	}

	var minPos, maxPos sql.NullInt64
	err := s.db.QueryRow(
		"SELECT COUNT(*), MIN(position), MAX(position) FROM read_variants",
	).Scan(&st.VariantCount, &minPos, &maxPos)
	if err != nil {
		return st, fmt.Errorf("summarize variants: %w", err)
	}

	if minPos.Valid {
		st.HasPositions = true
		st.MinPosition = minPos.Int64
		st.MaxPosition = maxPos.Int64
	}

	return st, nil
}
