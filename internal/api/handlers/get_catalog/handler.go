package get_catalog

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// CatalogResponse каталог временных слотов рабочего дня
type CatalogResponse struct {
	Slots []string `json:"slots"`
}

type Handler struct {
	catalog domain.SlotCatalog
	logger  Logger
}

func NewHandler(catalog domain.SlotCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slots := make([]string, 0, len(h.catalog))
	for _, slot := range h.catalog {
		slots = append(slots, slot.String())
	}

	handlers.RespondJSON(w, http.StatusOK, CatalogResponse{Slots: slots})
}
