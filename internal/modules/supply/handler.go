package supply

import (
	"context"

	"github.com/georgemunganga/storefront/internal/console"
)

type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterCommands(menu *console.Menu) {
	menu.Handle(9, "Place Product Supply Request to Warehouse", h.placeRequest)
}

func (h *Handler) placeRequest(ctx context.Context, s *console.Session) error {
	p, _ := s.Principal()

	storeID, err := s.PromptInt("\tEnter store ID: ", "store id")
	if err != nil {
		return err
	}
	if err := h.service.Authorize(ctx, p.UserID, storeID); err != nil {
		return err
	}
	productName, err := s.Prompt("\tEnter product name: ")
	if err != nil {
		return err
	}
	units, err := s.PromptPositiveInt("\tEnter number of units: ", "number of units")
	if err != nil {
		return err
	}
	warehouseID, err := s.PromptInt("\tEnter warehouse ID: ", "warehouse id")
	if err != nil {
		return err
	}

	receipt, err := h.service.PlaceRequest(ctx, PlaceRequest{
		ManagerID:   p.UserID,
		StoreID:     storeID,
		ProductName: productName,
		Units:       units,
		WarehouseID: warehouseID,
	})
	if err != nil {
		return err
	}
	s.Printf("Supply request %d filed. Store %d now has %d unit(s) of %s.\n",
		receipt.Request.Number, receipt.Request.StoreID, receipt.NewStock, receipt.Request.ProductName)
	return nil
}
