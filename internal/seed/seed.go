package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
	Updates int
}

// Run writes ds in one transaction. Rows that already match are left
// alone, so repeated runs report zero inserts and zero updates.
func Run(ctx context.Context, db *sql.DB, ds Dataset) (Stats, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	for _, c := range ds.Countries {
		if err := ensureCountry(ctx, tx, c, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
		for _, s := range c.Subdivisions {
			if err := ensureSubdivision(ctx, tx, c.Code, s, &stats); err != nil {
				_ = tx.Rollback()
				return Stats{}, err
			}
		}
	}
	for _, icon := range ds.Icons {
		if err := ensureIcon(ctx, tx, icon, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func ensureCountry(ctx context.Context, tx *sql.Tx, c Country, stats *Stats) error {
	var name string
	err := tx.QueryRowContext(ctx, `SELECT name FROM countries WHERE code = ?`, c.Code).Scan(&name)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := tx.ExecContext(ctx, `INSERT INTO countries (code, name) VALUES (?, ?)`, c.Code, c.Name); err != nil {
			return fmt.Errorf("insert country %s: %w", c.Code, err)
		}
		stats.Inserts++
		return nil
	case err != nil:
		return fmt.Errorf("check country %s: %w", c.Code, err)
	}

	if name == c.Name {
		return nil
	}
	if _, err := tx.ExecContext(ctx, `UPDATE countries SET name = ? WHERE code = ?`, c.Name, c.Code); err != nil {
		return fmt.Errorf("update country %s: %w", c.Code, err)
	}
	stats.Updates++
	return nil
}

func ensureSubdivision(ctx context.Context, tx *sql.Tx, country string, s Subdivision, stats *Stats) error {
	var name, kind string
	err := tx.QueryRowContext(ctx, `
		SELECT name, type
		FROM subdivisions
		WHERE country_code = ? AND code = ?
	`, country, s.Code).Scan(&name, &kind)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO subdivisions (country_code, code, name, type)
			VALUES (?, ?, ?, ?)
		`, country, s.Code, s.Name, s.Type); err != nil {
			return fmt.Errorf("insert subdivision %s-%s: %w", country, s.Code, err)
		}
		stats.Inserts++
		return nil
	case err != nil:
		return fmt.Errorf("check subdivision %s-%s: %w", country, s.Code, err)
	}

	if name == s.Name && kind == s.Type {
		return nil
	}
	if _, err := tx.ExecContext(ctx, `
		UPDATE subdivisions SET name = ?, type = ?
		WHERE country_code = ? AND code = ?
	`, s.Name, s.Type, country, s.Code); err != nil {
		return fmt.Errorf("update subdivision %s-%s: %w", country, s.Code, err)
	}
	stats.Updates++
	return nil
}

func ensureIcon(ctx context.Context, tx *sql.Tx, icon Icon, stats *Stats) error {
	var viewBox, path string
	err := tx.QueryRowContext(ctx, `SELECT view_box, path FROM icons WHERE name = ?`, icon.Name).Scan(&viewBox, &path)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := tx.ExecContext(ctx, `INSERT INTO icons (name, view_box, path) VALUES (?, ?, ?)`, icon.Name, icon.ViewBox, icon.Path); err != nil {
			return fmt.Errorf("insert icon %s: %w", icon.Name, err)
		}
		stats.Inserts++
		return nil
	case err != nil:
		return fmt.Errorf("check icon %s: %w", icon.Name, err)
	}

	if viewBox == icon.ViewBox && path == icon.Path {
		return nil
	}
	if _, err := tx.ExecContext(ctx, `UPDATE icons SET view_box = ?, path = ? WHERE name = ?`, icon.ViewBox, icon.Path, icon.Name); err != nil {
		return fmt.Errorf("update icon %s: %w", icon.Name, err)
	}
	stats.Updates++
	return nil
}
