package analytics

import (
	"context"
	"fmt"
	"strconv"

	"github.com/georgemunganga/storefront/internal/console"
)

type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterCommands(menu *console.Menu) {
	menu.Handle(7, fmt.Sprintf("View %d Popular Items", h.service.Limit()), h.popularProducts)
	menu.Handle(8, fmt.Sprintf("View %d Popular Customers", h.service.Limit()), h.popularCustomers)
}

func (h *Handler) popularProducts(ctx context.Context, s *console.Session) error {
	p, _ := s.Principal()
	products, err := h.service.PopularProducts(ctx, p.UserID)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(products))
	for _, pp := range products {
		rows = append(rows, []string{pp.ProductName, strconv.Itoa(pp.OrderCount)})
	}
	if s.Table([]string{"productname", "numorders"}, rows) == 0 {
		s.Println("No orders found for your stores")
	}
	return nil
}

func (h *Handler) popularCustomers(ctx context.Context, s *console.Session) error {
	p, _ := s.Principal()
	customers, err := h.service.PopularCustomers(ctx, p.UserID)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []string{
			strconv.Itoa(c.UserID),
			c.Name,
			strconv.FormatFloat(c.Latitude, 'f', -1, 64),
			strconv.FormatFloat(c.Longitude, 'f', -1, 64),
			strconv.Itoa(c.OrderCount),
		})
	}
	if s.Table([]string{"userid", "name", "latitude", "longitude", "numorders"}, rows) == 0 {
		s.Println("No customers found for your stores")
	}
	return nil
}
