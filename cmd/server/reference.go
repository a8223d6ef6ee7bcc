package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/Simplici0/pricing-calculator/internal/icons"
	"github.com/Simplici0/pricing-calculator/internal/regions"
)

const (
	pageTitle       = "Pricing Calculator for Handmade Products"
	pageDescription = "A pricing calculator for handmade product creators and artisans. Add up materials, labor, packaging and other costs, then apply markup, discount and sales tax to find a selling price."
	footerIconColor = "#7C3AED"
	footerIconSize  = 20
)

var pageFeatures = []string{
	"Materials cost calculation",
	"Labor cost tracking",
	"Packaging and shipping costs",
	"Markup and discount calculations",
	"Profit margin analysis",
	"Visual cost breakdown chart",
}

var calculatorPage = pageMeta{
	Title:          pageTitle,
	Description:    pageDescription,
	Lead:           "Take the guesswork out of pricing your handmade products and spend more time making. Account for materials, labor and packaging costs so you price for profit.",
	Features:       pageFeatures,
	StructuredData: mustStructuredData(),
}

// mustStructuredData renders the schema.org WebApplication description
// embedded in the page head.
func mustStructuredData() template.JS {
	doc := map[string]any{
		"@context":            "https://schema.org",
		"@type":               "WebApplication",
		"name":                pageTitle,
		"description":         pageDescription,
		"applicationCategory": "BusinessApplication",
		"operatingSystem":     "Web Browser",
		"offers":              map[string]any{"@type": "Offer", "price": "0", "priceCurrency": "USD"},
		"audience":            map[string]any{"@type": "Audience", "audienceType": "Handmade product creators, artisans, craft business owners"},
		"featureList":         pageFeatures,
	}
	body, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	return template.JS(body)
}

func (s *server) iconLinks(r *http.Request) []iconLink {
	all, err := s.icons.List(r.Context())
	if err != nil {
		s.logger.Warn("failed to list icons", zap.Error(err))
		return nil
	}

	q := url.Values{}
	q.Set("color", footerIconColor)
	q.Set("size", cast.ToString(footerIconSize))

	links := make([]iconLink, 0, len(all))
	for _, icon := range all {
		links = append(links, iconLink{Name: icon.Name, URL: "/icons/" + icon.Name + ".svg?" + q.Encode()})
	}
	return links
}

func (s *server) handleCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := s.regions.Countries(r.Context())
	if err != nil {
		s.logger.Error("failed to load countries", zap.Error(err))
		http.Error(w, "failed to load countries", http.StatusInternalServerError)
		return
	}
	if countries == nil {
		countries = []regions.Country{}
	}
	s.writeJSON(w, http.StatusOK, countries)
}

func (s *server) handleSubdivisions(w http.ResponseWriter, r *http.Request) {
	country := chi.URLParam(r, "country")
	subs, err := s.regions.Search(r.Context(), country, r.URL.Query().Get("q"))
	if errors.Is(err, regions.ErrNotFound) {
		http.Error(w, "unknown country", http.StatusNotFound)
		return
	}
	if err != nil {
		s.logger.Error("failed to load subdivisions", zap.String("country", country), zap.Error(err))
		http.Error(w, "failed to load subdivisions", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, subs)
}

func (s *server) handleSubdivision(w http.ResponseWriter, r *http.Request) {
	country := chi.URLParam(r, "country")
	sub, err := s.regions.Lookup(r.Context(), country, chi.URLParam(r, "code"))
	if errors.Is(err, regions.ErrNotFound) {
		http.Error(w, "unknown subdivision", http.StatusNotFound)
		return
	}
	if err != nil {
		s.logger.Error("failed to look up subdivision", zap.String("country", country), zap.Error(err))
		http.Error(w, "failed to look up subdivision", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, sub)
}

func (s *server) handleIcon(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	icon, err := s.icons.Get(r.Context(), name)
	if errors.Is(err, icons.ErrNotFound) {
		s.logger.Warn("icon not found", zap.String("name", name))
		http.Error(w, "unknown icon", http.StatusNotFound)
		return
	}
	if err != nil {
		s.logger.Error("failed to load icon", zap.String("name", name), zap.Error(err))
		http.Error(w, "failed to load icon", http.StatusInternalServerError)
		return
	}

	size := cast.ToInt(r.URL.Query().Get("size"))

	var buf bytes.Buffer
	if err := icons.RenderSVG(&buf, icon, size, r.URL.Query().Get("color")); err != nil {
		s.logger.Error("failed to render icon", zap.String("name", name), zap.Error(err))
		http.Error(w, "failed to render icon", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = buf.WriteTo(w)
}
