package order

import (
	"context"
	"fmt"
	"strconv"

	"github.com/georgemunganga/storefront/internal/console"
)

type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterCommands(menu *console.Menu) {
	menu.Handle(3, "Place a Order", h.placeOrder)
	menu.Handle(4, fmt.Sprintf("View %d recent orders", h.service.Limit()), h.recentOrders)
}

func (h *Handler) placeOrder(ctx context.Context, s *console.Session) error {
	storeID, err := s.PromptInt("\tEnter Store ID: ", "store id")
	if err != nil {
		return err
	}
	productName, err := s.Prompt("\tEnter Product Name: ")
	if err != nil {
		return err
	}
	quantity, err := s.PromptPositiveInt("\tEnter Quantity Purchased: ", "quantity")
	if err != nil {
		return err
	}

	p, _ := s.Principal()
	receipt, err := h.service.PlaceOrder(ctx, p.UserID, storeID, productName, quantity)
	if err != nil {
		return err
	}
	s.Printf("Order %d placed at %s. %d unit(s) of %s left in store %d.\n",
		receipt.Order.Number, receipt.Order.OrderTime.Format(TimeLayout),
		receipt.RemainingUnits, receipt.Order.ProductName, receipt.Order.StoreID)
	return nil
}

func (h *Handler) recentOrders(ctx context.Context, s *console.Session) error {
	p, _ := s.Principal()
	orders, err := h.service.RecentOrders(ctx, p.UserID)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			strconv.Itoa(o.Number),
			strconv.Itoa(o.StoreID),
			o.ProductName,
			strconv.Itoa(o.UnitsOrdered),
			o.OrderTime.Format(TimeLayout),
		})
	}
	if s.Table([]string{"ordernumber", "storeid", "productname", "unitsordered", "ordertime"}, rows) == 0 {
		s.Println("No orders found")
	}
	return nil
}
