package pages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "fleet-system/pkg/errors"
)

type stubHandler struct {
	page Page
}

func (h stubHandler) Render(ctx context.Context) (*Payload, error) {
	return &Payload{Page: h.page, Title: string(h.page)}, nil
}

func TestRegistry_RenderDispatchesByPage(t *testing.T) {
	reg := NewRegistry()
	reg.Register(PageWorkshop, stubHandler{page: PageWorkshop})
	reg.Register(PageFleet, stubHandler{page: PageFleet})

	payload, err := reg.Render(context.Background(), PageWorkshop)
	require.NoError(t, err)
	assert.Equal(t, PageWorkshop, payload.Page)
}

func TestRegistry_RenderUnknownPage(t *testing.T) {
	reg := NewRegistry()
	reg.Register(PageWorkshop, stubHandler{page: PageWorkshop})

	_, err := reg.Render(context.Background(), Page("reportes"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRegistry_PagesKeepsNavigationOrder(t *testing.T) {
	reg := NewRegistry()
	// Registradas fuera de orden a propósito.
	reg.Register(PageSettings, stubHandler{page: PageSettings})
	reg.Register(PageDashboard, stubHandler{page: PageDashboard})
	reg.Register(PageWorkshop, stubHandler{page: PageWorkshop})

	assert.Equal(t, []Page{PageDashboard, PageWorkshop, PageSettings}, reg.Pages())
}
