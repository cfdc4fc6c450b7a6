package fulfillmentservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gofulfill/internal/domain"
	apperror "gofulfill/internal/errors"
	"gofulfill/internal/pkg/logger"
)

// Limites de cardinalidade das atribuições.
const (
	MaxWarehousesPerProductPerStore = 2
	MaxWarehousesPerStore           = 3
	MaxProductsPerWarehouse         = 5
)

// AssignmentRepository define o contrato de persistência das atribuições.
// Todas as contagens são de valores distintos e refletem o estado atual do armazenamento.
type AssignmentRepository interface {
	Exists(ctx context.Context, businessUnitCode, productID, storeID string) (bool, error)
	CountWarehousesForProductAtStore(ctx context.Context, productID, storeID string) (int, error)
	CountWarehousesForStore(ctx context.Context, storeID string) (int, error)
	CountProductsForWarehouse(ctx context.Context, businessUnitCode string) (int, error)
	WarehouseFulfillsStore(ctx context.Context, businessUnitCode, storeID string) (bool, error)
	WarehouseStoresProduct(ctx context.Context, businessUnitCode, productID string) (bool, error)
	Create(ctx context.Context, assignment domain.FulfillmentAssignment) (domain.FulfillmentAssignment, error)
	FindByID(ctx context.Context, id string) (domain.FulfillmentAssignment, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]domain.FulfillmentAssignment, error)
	ListByStore(ctx context.Context, storeID string) ([]domain.FulfillmentAssignment, error)
	ListByWarehouse(ctx context.Context, businessUnitCode string) ([]domain.FulfillmentAssignment, error)
	ListByProduct(ctx context.Context, productID string) ([]domain.FulfillmentAssignment, error)
}

// WarehouseFinder localiza o armazém ativo referenciado por uma atribuição.
type WarehouseFinder interface {
	FindActiveByCode(ctx context.Context, businessUnitCode string) (domain.Warehouse, error)
}

// ProductCatalog verifica a existência de produtos.
type ProductCatalog interface {
	Exists(ctx context.Context, productID string) (bool, error)
}

// StoreDirectory verifica a existência de lojas.
type StoreDirectory interface {
	Exists(ctx context.Context, storeID string) (bool, error)
}

// Service implementa domain.FulfillmentService.
type Service struct {
	assignments AssignmentRepository
	warehouses  WarehouseFinder
	products    ProductCatalog
	stores      StoreDirectory
	tx          domain.Transactor
	logger      logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Atribuições.
func NewService(assignments AssignmentRepository, warehouses WarehouseFinder, products ProductCatalog, stores StoreDirectory, tx domain.Transactor, logger logger.Logger) *Service {
	return &Service{
		assignments: assignments,
		warehouses:  warehouses,
		products:    products,
		stores:      stores,
		tx:          tx,
		logger:      logger,
	}
}

var _ domain.FulfillmentService = (*Service)(nil)

// Create admite uma nova atribuição. As verificações seguem uma ordem fixa e a primeira
// falha interrompe a operação.
func (s *Service) Create(ctx context.Context, assignment domain.FulfillmentAssignment) (domain.FulfillmentAssignment, error) {
	assignment.WarehouseBusinessUnitCode = strings.TrimSpace(assignment.WarehouseBusinessUnitCode)
	assignment.ProductID = strings.TrimSpace(assignment.ProductID)
	assignment.StoreID = strings.TrimSpace(assignment.StoreID)
	fields := map[string]interface{}{
		"warehouse":  assignment.WarehouseBusinessUnitCode,
		"product_id": assignment.ProductID,
		"store_id":   assignment.StoreID,
	}
	s.logger.Debug("Iniciando admissão de atribuição no serviço.", fields)

	if err := validateRequired(assignment); err != nil {
		s.logger.Warn("Falha na validação da atribuição.", map[string]interface{}{"error": err.Error()})
		return domain.FulfillmentAssignment{}, err
	}

	// A loja cobre as restrições por loja e por produto/loja; o armazém cobre a restrição por armazém.
	keys := []string{
		domain.StoreLockKey(assignment.StoreID),
		domain.WarehouseLockKey(assignment.WarehouseBusinessUnitCode),
	}

	var created domain.FulfillmentAssignment
	err := s.tx.WithinTx(ctx, keys, func(ctx context.Context) error {
		if err := s.checkReferences(ctx, assignment); err != nil {
			return err
		}

		exists, err := s.assignments.Exists(ctx, assignment.WarehouseBusinessUnitCode, assignment.ProductID, assignment.StoreID)
		if err != nil {
			return apperror.Wrap("Falha interna ao verificar atribuição existente.", err)
		}
		if exists {
			return apperror.NewConflictError(fmt.Sprintf(
				"O armazém %s já abastece o produto %s para a loja %s.",
				assignment.WarehouseBusinessUnitCode, assignment.ProductID, assignment.StoreID))
		}

		if err := s.checkCardinality(ctx, assignment); err != nil {
			return err
		}

		assignment.ID = ""
		assignment.CreatedAt = time.Now().UTC()
		created, err = s.assignments.Create(ctx, assignment)
		if err != nil {
			return apperror.Wrap("Falha interna ao criar atribuição.", err)
		}
		return nil
	})
	if err != nil {
		s.logRejection("Atribuição rejeitada.", fields, err)
		return domain.FulfillmentAssignment{}, err
	}

	s.logger.Info("Atribuição criada com sucesso.", map[string]interface{}{
		"id":         created.ID,
		"warehouse":  created.WarehouseBusinessUnitCode,
		"product_id": created.ProductID,
		"store_id":   created.StoreID,
	})
	return created, nil
}

// checkReferences confirma armazém ativo, produto e loja, nesta ordem.
func (s *Service) checkReferences(ctx context.Context, a domain.FulfillmentAssignment) error {
	if _, err := s.warehouses.FindActiveByCode(ctx, a.WarehouseBusinessUnitCode); err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NewResourceNotFoundError("warehouse", fmt.Sprintf("Armazém ativo com código %s não existe.", a.WarehouseBusinessUnitCode))
		}
		return apperror.Wrap("Falha interna ao buscar armazém.", err)
	}

	ok, err := s.products.Exists(ctx, a.ProductID)
	if err != nil {
		return apperror.Wrap("Falha interna ao buscar produto.", err)
	}
	if !ok {
		return apperror.NewResourceNotFoundError("product", fmt.Sprintf("Produto com ID %s não existe.", a.ProductID))
	}

	ok, err = s.stores.Exists(ctx, a.StoreID)
	if err != nil {
		return apperror.Wrap("Falha interna ao buscar loja.", err)
	}
	if !ok {
		return apperror.NewResourceNotFoundError("store", fmt.Sprintf("Loja com ID %s não existe.", a.StoreID))
	}
	return nil
}

// checkCardinality aplica as três restrições. As restrições por loja e por armazém só contam
// quando a relação é nova: um armazém que já atende a loja pode receber outros produtos
// mesmo com a loja no limite, e um armazém que já estoca o produto pode atender outras lojas.
func (s *Service) checkCardinality(ctx context.Context, a domain.FulfillmentAssignment) error {
	n, err := s.assignments.CountWarehousesForProductAtStore(ctx, a.ProductID, a.StoreID)
	if err != nil {
		return apperror.Wrap("Falha interna ao contar armazéns do produto na loja.", err)
	}
	if n >= MaxWarehousesPerProductPerStore {
		return apperror.NewLimitError("max_warehouses_per_product_per_store", fmt.Sprintf(
			"O produto %s já é abastecido por %d armazéns na loja %s (máximo %d).",
			a.ProductID, n, a.StoreID, MaxWarehousesPerProductPerStore))
	}

	fulfills, err := s.assignments.WarehouseFulfillsStore(ctx, a.WarehouseBusinessUnitCode, a.StoreID)
	if err != nil {
		return apperror.Wrap("Falha interna ao verificar armazém da loja.", err)
	}
	if !fulfills {
		n, err := s.assignments.CountWarehousesForStore(ctx, a.StoreID)
		if err != nil {
			return apperror.Wrap("Falha interna ao contar armazéns da loja.", err)
		}
		if n >= MaxWarehousesPerStore {
			return apperror.NewLimitError("max_warehouses_per_store", fmt.Sprintf(
				"A loja %s já é atendida por %d armazéns (máximo %d).", a.StoreID, n, MaxWarehousesPerStore))
		}
	}

	stocks, err := s.assignments.WarehouseStoresProduct(ctx, a.WarehouseBusinessUnitCode, a.ProductID)
	if err != nil {
		return apperror.Wrap("Falha interna ao verificar produto do armazém.", err)
	}
	if !stocks {
		n, err := s.assignments.CountProductsForWarehouse(ctx, a.WarehouseBusinessUnitCode)
		if err != nil {
			return apperror.Wrap("Falha interna ao contar produtos do armazém.", err)
		}
		if n >= MaxProductsPerWarehouse {
			return apperror.NewLimitError("max_products_per_warehouse", fmt.Sprintf(
				"O armazém %s já estoca %d produtos (máximo %d).", a.WarehouseBusinessUnitCode, n, MaxProductsPerWarehouse))
		}
	}
	return nil
}

// Delete remove uma atribuição pelo ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	s.logger.Debug("Iniciando remoção de atribuição no serviço.", map[string]interface{}{"id": id})

	if id == "" {
		return apperror.NewFieldError("id", "O identificador da atribuição é obrigatório.")
	}

	err := s.tx.WithinTx(ctx, []string{domain.AssignmentLockKey(id)}, func(ctx context.Context) error {
		if _, err := s.assignments.FindByID(ctx, id); err != nil {
			return apperror.Wrap("Falha interna ao buscar atribuição.", err)
		}
		if err := s.assignments.Delete(ctx, id); err != nil {
			return apperror.Wrap("Falha interna ao remover atribuição.", err)
		}
		return nil
	})
	if err != nil {
		s.logRejection("Remoção de atribuição rejeitada.", map[string]interface{}{"id": id}, err)
		return err
	}

	s.logger.Info("Atribuição removida com sucesso.", map[string]interface{}{"id": id})
	return nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.FulfillmentAssignment, error) {
	return orEmpty(s.assignments.ListAll(ctx))
}

func (s *Service) ListByStore(ctx context.Context, storeID string) ([]domain.FulfillmentAssignment, error) {
	return orEmpty(s.assignments.ListByStore(ctx, strings.TrimSpace(storeID)))
}

func (s *Service) ListByWarehouse(ctx context.Context, businessUnitCode string) ([]domain.FulfillmentAssignment, error) {
	return orEmpty(s.assignments.ListByWarehouse(ctx, strings.TrimSpace(businessUnitCode)))
}

func (s *Service) ListByProduct(ctx context.Context, productID string) ([]domain.FulfillmentAssignment, error) {
	return orEmpty(s.assignments.ListByProduct(ctx, strings.TrimSpace(productID)))
}

func orEmpty(list []domain.FulfillmentAssignment, err error) ([]domain.FulfillmentAssignment, error) {
	if err != nil {
		return nil, apperror.Wrap("Falha interna ao listar atribuições.", err)
	}
	if list == nil {
		list = []domain.FulfillmentAssignment{}
	}
	return list, nil
}

func validateRequired(a domain.FulfillmentAssignment) error {
	if a.WarehouseBusinessUnitCode == "" {
		return apperror.NewFieldError("warehouseBusinessUnitCode", "O código do armazém é obrigatório.")
	}
	if a.ProductID == "" {
		return apperror.NewFieldError("productId", "O ID do produto é obrigatório.")
	}
	if a.StoreID == "" {
		return apperror.NewFieldError("storeId", "O ID da loja é obrigatório.")
	}
	return nil
}

func (s *Service) logRejection(msg string, fields map[string]interface{}, err error) {
	if appErr, ok := apperror.As(err); ok && appErr.HTTPStatus() < 500 {
		out := map[string]interface{}{"category": appErr.Category(), "error": err.Error()}
		for k, v := range fields {
			out[k] = v
		}
		s.logger.Warn(msg, out)
		return
	}
	s.logger.Error(msg, err)
}
