package catalog

import (
	"context"
	"fmt"
	"strconv"

	"github.com/georgemunganga/storefront/internal/console"
)

const timeLayout = "2006-01-02 15:04:05"

type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterCommands(menu *console.Menu) {
	menu.Handle(5, "Update Product", h.updateProduct)
	menu.Handle(6, fmt.Sprintf("View %d recent Product Updates Info", h.service.Limit()), h.recentUpdates)
}

func (h *Handler) updateProduct(ctx context.Context, s *console.Session) error {
	p, _ := s.Principal()

	storeID, err := s.PromptInt("\tEnter store ID: ", "store id")
	if err != nil {
		return err
	}
	if err := h.service.Authorize(ctx, p.UserID, storeID); err != nil {
		return err
	}

	productName, err := s.Prompt("\tWhich product do you want to edit? ")
	if err != nil {
		return err
	}
	rawField, err := s.Prompt("\tWhat do you want to edit? (1 productname, 2 numberofunits, 3 priceperunit) ")
	if err != nil {
		return err
	}
	field, err := ParseField(rawField)
	if err != nil {
		return err
	}
	rawValue, err := s.Prompt("\tWhat do you want to change it to? ")
	if err != nil {
		return err
	}
	change, err := ParseChange(field, rawValue)
	if err != nil {
		return err
	}

	u, err := h.service.UpdateProduct(ctx, p.UserID, storeID, productName, change)
	if err != nil {
		return err
	}
	s.Printf("Update %d recorded: %s of %s in store %d is now %s.\n",
		u.Number, field, u.ProductName, u.StoreID, change)
	return nil
}

func (h *Handler) recentUpdates(ctx context.Context, s *console.Session) error {
	p, _ := s.Principal()
	updates, err := h.service.RecentUpdates(ctx, p.UserID)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(updates))
	for _, u := range updates {
		rows = append(rows, []string{
			strconv.Itoa(u.Number),
			strconv.Itoa(u.StoreID),
			u.ProductName,
			u.UpdatedOn.Format(timeLayout),
		})
	}
	if s.Table([]string{"updatenumber", "storeid", "productname", "updatedon"}, rows) == 0 {
		s.Println("No product updates found")
	}
	return nil
}
