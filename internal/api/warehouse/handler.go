package warehouse

import (
	"net/http"

	"gofulfill/internal/api/response"
	"gofulfill/internal/domain"
	"gofulfill/internal/pkg/logger"
)

// Handler agrupa todos os métodos de Handler de armazéns.
type Handler struct {
	Service domain.WarehouseService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc domain.WarehouseService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// CreateWarehouseHandler lida com a requisição POST /v1/warehouses.
// @Summary Cria um novo armazém
// @Description Cria um armazém respeitando os limites de quantidade e capacidade da localização.
// @Tags warehouses
// @Accept json
// @Produce json
// @Param warehouse body domain.Warehouse true "Dados do armazém para criação"
// @Success 201 {object} domain.Warehouse "Armazém criado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 409 {object} domain.ErrorResponse "Código de unidade de negócio já em uso"
// @Failure 422 {object} domain.ErrorResponse "Campo inválido ou limite da localização atingido"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /warehouses [post]
func (h *Handler) CreateWarehouseHandler(w http.ResponseWriter, r *http.Request) {
	var req warehouseRequest
	if err := response.Decode(r, &req); err != nil {
		response.Write(w, r, h.Logger, nil, err, 0)
		return
	}
	warehouse, err := req.toDomain()
	if err != nil {
		response.Write(w, r, h.Logger, nil, err, 0)
		return
	}

	created, err := h.Service.Create(r.Context(), warehouse)
	response.Write(w, r, h.Logger, created, err, http.StatusCreated)
}

// ListWarehousesHandler lida com a requisição GET /v1/warehouses.
// @Summary Lista os armazéns ativos
// @Description Retorna todos os armazéns não arquivados.
// @Tags warehouses
// @Produce json
// @Success 200 {array} domain.Warehouse "Lista de armazéns ativos"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /warehouses [get]
func (h *Handler) ListWarehousesHandler(w http.ResponseWriter, r *http.Request) {
	warehouses, err := h.Service.ListActive(r.Context())
	response.Write(w, r, h.Logger, warehouses, err, http.StatusOK)
}

// GetWarehouseByIDHandler lida com a requisição GET /v1/warehouses/{id}.
// @Summary Obtém um armazém ativo por ID
// @Tags warehouses
// @Produce json
// @Param id path string true "ID do Armazém"
// @Success 200 {object} domain.Warehouse "Armazém encontrado"
// @Failure 404 {object} domain.ErrorResponse "Armazém não encontrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /warehouses/{id} [get]
func (h *Handler) GetWarehouseByIDHandler(w http.ResponseWriter, r *http.Request) {
	warehouse, err := h.Service.GetByID(r.Context(), r.PathValue("id"))
	response.Write(w, r, h.Logger, warehouse, err, http.StatusOK)
}

// ArchiveWarehouseHandler lida com a requisição DELETE /v1/warehouses/{id}.
// O registro não é removido: recebe a data de arquivamento e sai das consultas de ativos.
// @Summary Arquiva um armazém
// @Tags warehouses
// @Param id path string true "ID do Armazém"
// @Success 204 "Nenhum conteúdo"
// @Failure 404 {object} domain.ErrorResponse "Armazém não encontrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /warehouses/{id} [delete]
func (h *Handler) ArchiveWarehouseHandler(w http.ResponseWriter, r *http.Request) {
	err := h.Service.Archive(r.Context(), r.PathValue("id"))
	response.Write(w, r, h.Logger, nil, err, http.StatusNoContent)
}

// ReplaceWarehouseHandler lida com a requisição POST /v1/warehouses/{businessUnitCode}/replacement.
// @Summary Substitui um armazém ativo
// @Description Arquiva o armazém ativo e cria um novo com a mesma localização e o mesmo estoque.
// @Tags warehouses
// @Accept json
// @Produce json
// @Param businessUnitCode path string true "Código da unidade de negócio"
// @Param warehouse body domain.Warehouse true "Dados do armazém substituto"
// @Success 200 {object} domain.Warehouse "Armazém substituto"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Armazém ativo não encontrado"
// @Failure 422 {object} domain.ErrorResponse "Localização, estoque ou capacidade incompatíveis"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /warehouses/{businessUnitCode}/replacement [post]
func (h *Handler) ReplaceWarehouseHandler(w http.ResponseWriter, r *http.Request) {
	var req warehouseRequest
	if err := response.Decode(r, &req); err != nil {
		response.Write(w, r, h.Logger, nil, err, 0)
		return
	}
	warehouse, err := req.toDomain()
	if err != nil {
		response.Write(w, r, h.Logger, nil, err, 0)
		return
	}
	warehouse.BusinessUnitCode = r.PathValue("businessUnitCode") // O código do caminho prevalece sobre o do corpo

	replaced, err := h.Service.Replace(r.Context(), warehouse)
	response.Write(w, r, h.Logger, replaced, err, http.StatusOK)
}
