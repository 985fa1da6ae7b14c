package pages

import (
	"context"
	"fmt"

	apperrors "fleet-system/pkg/errors"
)

// Page identifica cada pantalla del sistema. El despacho es por etiqueta
// explícita contra un registro de handlers; no hay carga dinámica de nada.
type Page string

const (
	PageDashboard Page = "dashboard"
	PageWorkshop  Page = "workshop"
	PageFleet     Page = "fleet"
	PageSettings  Page = "settings"
)

// Payload es lo que recibe la superficie de presentación para una página.
type Payload struct {
	Page  Page        `json:"page"`
	Title string      `json:"title"`
	Body  interface{} `json:"body"`
}

// Handler arma el contenido de una página. Cada variante es un tipo
// propio; todas cumplen el mismo contrato.
type Handler interface {
	Render(ctx context.Context) (*Payload, error)
}

type Registry struct {
	handlers map[Page]Handler
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[Page]Handler)}
}

func (r *Registry) Register(page Page, handler Handler) {
	r.handlers[page] = handler
}

func (r *Registry) Render(ctx context.Context, page Page) (*Payload, error) {
	handler, ok := r.handlers[page]
	if !ok {
		return nil, fmt.Errorf("%w: página %q", apperrors.ErrNotFound, page)
	}
	return handler.Render(ctx)
}

func (r *Registry) Pages() []Page {
	// Orden fijo de navegación, no el orden del mapa.
	ordered := []Page{PageDashboard, PageWorkshop, PageFleet, PageSettings}
	var available []Page
	for _, p := range ordered {
		if _, ok := r.handlers[p]; ok {
			available = append(available, p)
		}
	}
	return available
}
