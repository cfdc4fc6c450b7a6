package location

import (
	"net/http"

	"gofulfill/internal/api/response"
	"gofulfill/internal/domain"
	"gofulfill/internal/pkg/logger"
)

// Directory é o diretório somente leitura de localizações.
type Directory interface {
	List() []domain.Location
}

type Handler struct {
	Directory Directory
	Logger    logger.Logger
}

func NewHandler(dir Directory, log logger.Logger) *Handler {
	return &Handler{Directory: dir, Logger: log}
}

// ListLocationsHandler lida com a requisição GET /v1/locations.
// @Summary Lista as localizações conhecidas
// @Description Retorna o limite de armazéns e a capacidade máxima de cada localização.
// @Tags locations
// @Produce json
// @Success 200 {array} domain.Location
// @Router /locations [get]
func (h *Handler) ListLocationsHandler(w http.ResponseWriter, r *http.Request) {
	response.Write(w, r, h.Logger, h.Directory.List(), nil, http.StatusOK)
}
