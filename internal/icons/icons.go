// Package icons serves the single-path SVG glyphs used in the page footer.
package icons

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"
)

// ErrNotFound reports an icon name with no stored glyph.
var ErrNotFound = errors.New("icons: not found")

const (
	DefaultSize  = 24
	DefaultColor = "currentColor"
)

type Icon struct {
	Name    string `json:"name"`
	ViewBox string `json:"viewBox"`
	Path    string `json:"path"`
}

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get returns the icon called name, matched case-insensitively.
func (s *Store) Get(ctx context.Context, name string) (Icon, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	var icon Icon
	err := s.db.QueryRowContext(ctx, `SELECT name, view_box, path FROM icons WHERE name = ?`, key).
		Scan(&icon.Name, &icon.ViewBox, &icon.Path)
	if errors.Is(err, sql.ErrNoRows) {
		return Icon{}, fmt.Errorf("icon %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return Icon{}, fmt.Errorf("query icon %q: %w", name, err)
	}
	return icon, nil
}

// List returns every icon ordered by name.
func (s *Store) List(ctx context.Context) ([]Icon, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, view_box, path FROM icons ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query icons: %w", err)
	}
	defer rows.Close()

	var out []Icon
	for rows.Next() {
		var icon Icon
		if err := rows.Scan(&icon.Name, &icon.ViewBox, &icon.Path); err != nil {
			return nil, fmt.Errorf("scan icon: %w", err)
		}
		out = append(out, icon)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate icons: %w", err)
	}
	return out, nil
}

var svgTemplate = template.Must(template.New("svg").Parse(
	`<svg xmlns="http://www.w3.org/2000/svg" width="{{.Size}}" height="{{.Size}}" viewBox="{{.ViewBox}}" fill="{{.Color}}" role="img" aria-label="{{.Name}}"><path d="{{.Path}}"/></svg>`,
))

// RenderSVG writes icon as a standalone SVG document. A non-positive size
// falls back to DefaultSize and an empty color to DefaultColor.
func RenderSVG(w io.Writer, icon Icon, size int, color string) error {
	if size <= 0 {
		size = DefaultSize
	}
	if strings.TrimSpace(color) == "" {
		color = DefaultColor
	}

	return svgTemplate.Execute(w, struct {
		Icon
		Size  int
		Color string
	}{Icon: icon, Size: size, Color: color})
}
