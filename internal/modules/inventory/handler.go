package inventory

import (
	"context"
	"fmt"
	"strconv"

	"github.com/georgemunganga/storefront/internal/console"
)

// Handler exposes inventory commands in the user menu.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterCommands(menu *console.Menu) {
	menu.Handle(1, fmt.Sprintf("View Stores within %g miles", h.service.Radius()), h.viewStores)
	menu.Handle(2, "View Product List", h.viewProducts)
}

func (h *Handler) viewStores(ctx context.Context, s *console.Session) error {
	p, _ := s.Principal()
	stores, err := h.service.NearbyStores(ctx, p.UserID)
	if err != nil {
		return err
	}
	if len(stores) == 0 {
		s.Printf("No stores within %g mile radius\n", h.service.Radius())
		return nil
	}
	for _, st := range stores {
		s.Printf("Store ID: %d, Distance: %s\n", st.ID, strconv.FormatFloat(st.Distance, 'f', -1, 64))
	}
	return nil
}

func (h *Handler) viewProducts(ctx context.Context, s *console.Session) error {
	storeID, err := s.PromptInt("\tEnter Store ID: ", "store id")
	if err != nil {
		return err
	}
	products, err := h.service.ListProducts(ctx, storeID)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{p.Name, strconv.Itoa(p.NumberOfUnits), p.PricePerUnit.StringFixed(2)})
	}
	if s.Table([]string{"productname", "numberofunits", "priceperunit"}, rows) == 0 {
		s.Printf("No products found for store %d\n", storeID)
	}
	return nil
}
