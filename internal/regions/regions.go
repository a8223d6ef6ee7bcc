// Package regions looks up countries and their first-level subdivisions
// (states, provinces, constituent countries) from the reference database.
package regions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Simplici0/pricing-calculator/internal/cache"
)

// ErrNotFound reports an unknown country or subdivision code.
var ErrNotFound = errors.New("regions: not found")

type Country struct {
	Code            string `json:"code"`
	Name            string `json:"name"`
	HasSubdivisions bool   `json:"hasSubdivisions"`
}

type Subdivision struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Type string `json:"type"`
}

const (
	cacheCapacity = 64
	cacheTTL      = 10 * time.Minute
)

// Store reads reference tables and caches per-country subdivision lists.
// It is safe for concurrent use.
type Store struct {
	db        *sql.DB
	countries *cache.LRU[[]Country]
	subs      *cache.LRU[[]Subdivision]
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:        db,
		countries: cache.NewLRU[[]Country](1, cacheTTL),
		subs:      cache.NewLRU[[]Subdivision](cacheCapacity, cacheTTL),
	}
}

// Countries returns every country ordered by name.
func (s *Store) Countries(ctx context.Context) ([]Country, error) {
	if cached, ok := s.countries.Get("all"); ok {
		return slices.Clone(cached), nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT c.code, c.name, EXISTS(SELECT 1 FROM subdivisions s WHERE s.country_code = c.code)
		FROM countries c
		ORDER BY c.name
	`)
	if err != nil {
		return nil, fmt.Errorf("query countries: %w", err)
	}
	defer rows.Close()

	var out []Country
	for rows.Next() {
		var c Country
		if err := rows.Scan(&c.Code, &c.Name, &c.HasSubdivisions); err != nil {
			return nil, fmt.Errorf("scan country: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate countries: %w", err)
	}

	s.countries.Set("all", out)
	return slices.Clone(out), nil
}

// Subdivisions returns the subdivisions of country ordered by name. A known
// country without subdivisions yields an empty slice; an unknown country
// yields ErrNotFound.
func (s *Store) Subdivisions(ctx context.Context, country string) ([]Subdivision, error) {
	code := normalize(country)
	if cached, ok := s.subs.Get(code); ok {
		return slices.Clone(cached), nil
	}

	var exists bool
	if err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM countries WHERE code = ?)`, code).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check country %s: %w", code, err)
	}
	if !exists {
		return nil, fmt.Errorf("country %q: %w", country, ErrNotFound)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT code, name, type
		FROM subdivisions
		WHERE country_code = ?
		ORDER BY name
	`, code)
	if err != nil {
		return nil, fmt.Errorf("query subdivisions for %s: %w", code, err)
	}
	defer rows.Close()

	out := []Subdivision{}
	for rows.Next() {
		var sub Subdivision
		if err := rows.Scan(&sub.Code, &sub.Name, &sub.Type); err != nil {
			return nil, fmt.Errorf("scan subdivision: %w", err)
		}
		out = append(out, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subdivisions: %w", err)
	}

	s.subs.Set(code, out)
	return slices.Clone(out), nil
}

// Search filters the subdivisions of country by term.
func (s *Store) Search(ctx context.Context, country, term string) ([]Subdivision, error) {
	subs, err := s.Subdivisions(ctx, country)
	if err != nil {
		return nil, err
	}
	return Filter(subs, term), nil
}

// Lookup returns one subdivision by its code within country.
func (s *Store) Lookup(ctx context.Context, country, code string) (Subdivision, error) {
	subs, err := s.Subdivisions(ctx, country)
	if err != nil {
		return Subdivision{}, err
	}
	want := normalize(code)
	for _, sub := range subs {
		if sub.Code == want {
			return sub, nil
		}
	}
	return Subdivision{}, fmt.Errorf("subdivision %q in %s: %w", code, normalize(country), ErrNotFound)
}

// Filter keeps subdivisions whose name or code contains term, ignoring case.
// A blank term keeps everything.
func Filter(subs []Subdivision, term string) []Subdivision {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return subs
	}
	out := []Subdivision{}
	for _, sub := range subs {
		if strings.Contains(strings.ToLower(sub.Name), term) || strings.Contains(strings.ToLower(sub.Code), term) {
			out = append(out, sub)
		}
	}
	return out
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
