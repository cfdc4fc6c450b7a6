package fulfillment

import (
	"net/http"

	"gofulfill/internal/api/response"
	"gofulfill/internal/domain"
	"gofulfill/internal/pkg/logger"
)

// Handler expõe o motor de admissão de atribuições.
type Handler struct {
	Service domain.FulfillmentService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc domain.FulfillmentService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// CreateAssignmentHandler lida com a requisição POST /v1/fulfillment.
// @Summary Cria uma atribuição armazém/produto/loja
// @Description Admite a atribuição após verificar referências, duplicidade e os limites por produto/loja, por loja e por armazém.
// @Tags fulfillment
// @Accept json
// @Produce json
// @Param assignment body domain.FulfillmentAssignment true "Armazém, produto e loja"
// @Success 201 {object} domain.FulfillmentAssignment "Atribuição criada"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Armazém, produto ou loja inexistente"
// @Failure 409 {object} domain.ErrorResponse "Atribuição já existe"
// @Failure 422 {object} domain.ErrorResponse "Campo ausente ou limite atingido"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /fulfillment [post]
func (h *Handler) CreateAssignmentHandler(w http.ResponseWriter, r *http.Request) {
	var assignment domain.FulfillmentAssignment
	if err := response.Decode(r, &assignment); err != nil {
		response.Write(w, r, h.Logger, nil, err, 0)
		return
	}

	created, err := h.Service.Create(r.Context(), assignment)
	response.Write(w, r, h.Logger, created, err, http.StatusCreated)
}

// DeleteAssignmentHandler lida com a requisição DELETE /v1/fulfillment/{id}.
// @Summary Remove uma atribuição
// @Tags fulfillment
// @Param id path string true "ID da atribuição"
// @Success 204 "Nenhum conteúdo"
// @Failure 404 {object} domain.ErrorResponse "Atribuição não encontrada"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /fulfillment/{id} [delete]
func (h *Handler) DeleteAssignmentHandler(w http.ResponseWriter, r *http.Request) {
	err := h.Service.Delete(r.Context(), r.PathValue("id"))
	response.Write(w, r, h.Logger, nil, err, http.StatusNoContent)
}

// ListAssignmentsHandler lida com a requisição GET /v1/fulfillment.
// @Summary Lista todas as atribuições
// @Tags fulfillment
// @Produce json
// @Success 200 {array} domain.FulfillmentAssignment
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /fulfillment [get]
func (h *Handler) ListAssignmentsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.ListAll(r.Context())
	response.Write(w, r, h.Logger, list, err, http.StatusOK)
}

// ListByStoreHandler lida com a requisição GET /v1/fulfillment/store/{id}.
// @Summary Lista as atribuições de uma loja
// @Tags fulfillment
// @Produce json
// @Param id path string true "ID da loja"
// @Success 200 {array} domain.FulfillmentAssignment
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /fulfillment/store/{id} [get]
func (h *Handler) ListByStoreHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.ListByStore(r.Context(), r.PathValue("id"))
	response.Write(w, r, h.Logger, list, err, http.StatusOK)
}

// ListByWarehouseHandler lida com a requisição GET /v1/fulfillment/warehouse/{code}.
// @Summary Lista as atribuições de um armazém
// @Tags fulfillment
// @Produce json
// @Param code path string true "Código da unidade de negócio"
// @Success 200 {array} domain.FulfillmentAssignment
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /fulfillment/warehouse/{code} [get]
func (h *Handler) ListByWarehouseHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.ListByWarehouse(r.Context(), r.PathValue("code"))
	response.Write(w, r, h.Logger, list, err, http.StatusOK)
}

// ListByProductHandler lida com a requisição GET /v1/fulfillment/product/{id}.
// @Summary Lista as atribuições de um produto
// @Tags fulfillment
// @Produce json
// @Param id path string true "ID do produto"
// @Success 200 {array} domain.FulfillmentAssignment
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /fulfillment/product/{id} [get]
func (h *Handler) ListByProductHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.ListByProduct(r.Context(), r.PathValue("id"))
	response.Write(w, r, h.Logger, list, err, http.StatusOK)
}
