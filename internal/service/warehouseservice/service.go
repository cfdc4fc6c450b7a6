package warehouseservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gofulfill/internal/domain"
	apperror "gofulfill/internal/errors"
	"gofulfill/internal/pkg/logger"
)

// WarehouseRepository define o contrato que o Serviço de Armazéns espera da camada de Persistência.
// Buscas por registros ativos retornam NotFoundError quando não há linha ativa.
type WarehouseRepository interface {
	GetAllActive(ctx context.Context) ([]domain.Warehouse, error)
	Create(ctx context.Context, warehouse domain.Warehouse) (domain.Warehouse, error)
	Update(ctx context.Context, warehouse domain.Warehouse) (domain.Warehouse, error)
	FindActiveByCode(ctx context.Context, businessUnitCode string) (domain.Warehouse, error)
	FindActiveByID(ctx context.Context, id string) (domain.Warehouse, error)
}

// LocationResolver resolve um identificador de localização para seus limites.
type LocationResolver interface {
	Resolve(identifier string) (domain.Location, bool)
}

// Service implementa domain.WarehouseService: criação, substituição e arquivamento.
type Service struct {
	repo      WarehouseRepository
	locations LocationResolver
	tx        domain.Transactor
	logger    logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Armazéns.
func NewService(repo WarehouseRepository, locations LocationResolver, tx domain.Transactor, logger logger.Logger) *Service {
	return &Service{repo: repo, locations: locations, tx: tx, logger: logger}
}

var _ domain.WarehouseService = (*Service)(nil)

// Create cria um armazém respeitando os limites de quantidade e capacidade da localização.
func (s *Service) Create(ctx context.Context, warehouse domain.Warehouse) (domain.Warehouse, error) {
	warehouse.BusinessUnitCode = strings.TrimSpace(warehouse.BusinessUnitCode)
	s.logger.Debug("Iniciando criação de armazém no serviço.", map[string]interface{}{
		"business_unit_code": warehouse.BusinessUnitCode,
		"location":           warehouse.Location,
	})

	if err := validateRequired(warehouse); err != nil {
		s.logger.Warn("Falha na validação do armazém.", map[string]interface{}{"error": err.Error()})
		return domain.Warehouse{}, err
	}

	location, found := s.locations.Resolve(warehouse.Location)
	lockedLocation := warehouse.Location
	if found {
		lockedLocation = location.Identification
	}
	keys := []string{domain.LocationLockKey(lockedLocation), domain.WarehouseLockKey(warehouse.BusinessUnitCode)}

	var created domain.Warehouse
	err := s.tx.WithinTx(ctx, keys, func(ctx context.Context) error {
		_, err := s.repo.FindActiveByCode(ctx, warehouse.BusinessUnitCode)
		if err == nil {
			return apperror.NewConflictError(fmt.Sprintf("Já existe um armazém ativo com o código %s.", warehouse.BusinessUnitCode))
		}
		if !apperror.IsNotFound(err) {
			return apperror.Wrap("Falha interna ao verificar código do armazém.", err)
		}

		if !found {
			return apperror.NewFieldError("location", fmt.Sprintf("Localização %q não existe.", warehouse.Location))
		}

		active, err := s.repo.GetAllActive(ctx)
		if err != nil {
			return apperror.Wrap("Falha interna ao buscar armazéns ativos.", err)
		}
		atLocation := activeAt(active, location.Identification)

		if len(atLocation) >= location.MaxNumberOfWarehouses {
			return apperror.NewLimitError("location_max_warehouses", fmt.Sprintf(
				"Número máximo de armazéns atingido na localização %s (%d).",
				location.Identification, location.MaxNumberOfWarehouses))
		}

		totalCapacity := warehouse.Capacity
		for _, w := range atLocation {
			totalCapacity += w.Capacity
		}
		if totalCapacity > location.MaxCapacity {
			return apperror.NewLimitError("location_max_capacity", fmt.Sprintf(
				"Capacidade total %d excede o máximo de %d na localização %s.",
				totalCapacity, location.MaxCapacity, location.Identification))
		}

		if warehouse.Stock > warehouse.Capacity {
			return apperror.NewFieldError("stock", fmt.Sprintf(
				"Estoque (%d) não pode exceder a capacidade (%d).", warehouse.Stock, warehouse.Capacity))
		}

		// ID e datas são sempre atribuídos pelo serviço, nunca pelo cliente.
		warehouse.ID = ""
		warehouse.Location = location.Identification
		warehouse.CreatedAt = time.Now().UTC()
		warehouse.ArchivedAt = nil

		created, err = s.repo.Create(ctx, warehouse)
		if err != nil {
			return apperror.Wrap("Falha interna ao criar armazém.", err)
		}
		return nil
	})
	if err != nil {
		s.logRejection("Criação de armazém rejeitada.", warehouse.BusinessUnitCode, err)
		return domain.Warehouse{}, err
	}

	s.logger.Info("Armazém criado com sucesso.", map[string]interface{}{
		"id":                 created.ID,
		"business_unit_code": created.BusinessUnitCode,
		"location":           created.Location,
	})
	return created, nil
}

// Replace arquiva o armazém ativo e cria um novo registro com a nova capacidade,
// mantendo código, localização e estoque.
func (s *Service) Replace(ctx context.Context, replacement domain.Warehouse) (domain.Warehouse, error) {
	replacement.BusinessUnitCode = strings.TrimSpace(replacement.BusinessUnitCode)
	s.logger.Debug("Iniciando substituição de armazém no serviço.", map[string]interface{}{
		"business_unit_code": replacement.BusinessUnitCode,
		"capacity":           replacement.Capacity,
	})

	if err := validateRequired(replacement); err != nil {
		s.logger.Warn("Falha na validação do armazém substituto.", map[string]interface{}{"error": err.Error()})
		return domain.Warehouse{}, err
	}

	lockedLocation := replacement.Location
	if location, found := s.locations.Resolve(replacement.Location); found {
		lockedLocation = location.Identification
	}
	keys := []string{domain.LocationLockKey(lockedLocation), domain.WarehouseLockKey(replacement.BusinessUnitCode)}

	var created domain.Warehouse
	err := s.tx.WithinTx(ctx, keys, func(ctx context.Context) error {
		current, err := s.repo.FindActiveByCode(ctx, replacement.BusinessUnitCode)
		if err != nil {
			return apperror.Wrap("Falha interna ao buscar armazém atual.", err)
		}

		if !strings.EqualFold(strings.TrimSpace(replacement.Location), current.Location) {
			return apperror.NewFieldError("location", fmt.Sprintf(
				"A substituição deve permanecer na localização %s.", current.Location))
		}
		if replacement.Stock != current.Stock {
			return apperror.NewFieldError("stock", fmt.Sprintf(
				"O estoque do substituto (%d) deve ser igual ao estoque atual (%d).", replacement.Stock, current.Stock))
		}
		if replacement.Capacity < current.Stock {
			return apperror.NewFieldError("capacity", fmt.Sprintf(
				"A nova capacidade (%d) não comporta o estoque atual (%d).", replacement.Capacity, current.Stock))
		}

		now := time.Now().UTC()
		current.ArchivedAt = &now
		if _, err := s.repo.Update(ctx, current); err != nil {
			return apperror.Wrap("Falha interna ao arquivar armazém atual.", err)
		}

		created, err = s.repo.Create(ctx, domain.Warehouse{
			BusinessUnitCode: current.BusinessUnitCode,
			Location:         current.Location,
			Capacity:         replacement.Capacity,
			Stock:            current.Stock,
			CreatedAt:        now,
		})
		if err != nil {
			return apperror.Wrap("Falha interna ao criar armazém substituto.", err)
		}
		return nil
	})
	if err != nil {
		s.logRejection("Substituição de armazém rejeitada.", replacement.BusinessUnitCode, err)
		return domain.Warehouse{}, err
	}

	s.logger.Info("Armazém substituído com sucesso.", map[string]interface{}{
		"id":                 created.ID,
		"business_unit_code": created.BusinessUnitCode,
		"capacity":           created.Capacity,
	})
	return created, nil
}

// Archive marca o armazém ativo como arquivado. Atribuições existentes não são alteradas.
func (s *Service) Archive(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	s.logger.Debug("Iniciando arquivamento de armazém no serviço.", map[string]interface{}{"id": id})

	if id == "" {
		return apperror.NewFieldError("id", "O identificador do armazém é obrigatório.")
	}

	// A primeira leitura só descobre código e localização para montar as chaves de lock;
	// a verificação que vale é repetida dentro da transação.
	current, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		s.logRejection("Arquivamento de armazém rejeitado.", id, err)
		return apperror.Wrap("Falha interna ao buscar armazém.", err)
	}
	keys := []string{
		domain.WarehouseIDLockKey(id),
		domain.WarehouseLockKey(current.BusinessUnitCode),
		domain.LocationLockKey(current.Location),
	}

	err = s.tx.WithinTx(ctx, keys, func(ctx context.Context) error {
		current, err := s.repo.FindActiveByID(ctx, id)
		if err != nil {
			return apperror.Wrap("Falha interna ao buscar armazém.", err)
		}
		now := time.Now().UTC()
		current.ArchivedAt = &now
		if _, err := s.repo.Update(ctx, current); err != nil {
			return apperror.Wrap("Falha interna ao arquivar armazém.", err)
		}
		return nil
	})
	if err != nil {
		s.logRejection("Arquivamento de armazém rejeitado.", id, err)
		return err
	}

	s.logger.Info("Armazém arquivado com sucesso.", map[string]interface{}{
		"id":                 id,
		"business_unit_code": current.BusinessUnitCode,
	})
	return nil
}

// GetByID busca um armazém ativo pelo ID.
func (s *Service) GetByID(ctx context.Context, id string) (domain.Warehouse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Warehouse{}, apperror.NewFieldError("id", "O identificador do armazém é obrigatório.")
	}

	warehouse, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		return domain.Warehouse{}, apperror.Wrap("Falha interna ao buscar armazém.", err)
	}
	return warehouse, nil
}

// ListActive lista todos os armazéns ativos.
func (s *Service) ListActive(ctx context.Context) ([]domain.Warehouse, error) {
	warehouses, err := s.repo.GetAllActive(ctx)
	if err != nil {
		s.logger.Error("Falha ao buscar armazéns ativos no repositório.", err)
		return nil, apperror.Wrap("Falha interna ao buscar armazéns.", err)
	}
	if warehouses == nil {
		warehouses = []domain.Warehouse{}
	}
	return warehouses, nil
}

// validateRequired aplica as validações de campos comuns à criação e à substituição.
func validateRequired(w domain.Warehouse) error {
	if w.BusinessUnitCode == "" {
		return apperror.NewFieldError("businessUnitCode", "O código da unidade de negócio é obrigatório.")
	}
	if strings.TrimSpace(w.Location) == "" {
		return apperror.NewFieldError("location", "A localização é obrigatória.")
	}
	if w.Capacity <= 0 {
		return apperror.NewFieldError("capacity", "A capacidade deve ser maior que zero.")
	}
	if w.Stock < 0 {
		return apperror.NewFieldError("stock", "O estoque não pode ser negativo.")
	}
	return nil
}

func activeAt(warehouses []domain.Warehouse, location string) []domain.Warehouse {
	var out []domain.Warehouse
	for _, w := range warehouses {
		if w.IsActive() && w.Location == location {
			out = append(out, w)
		}
	}
	return out
}

// logRejection registra regras de negócio como Warn e falhas de infraestrutura como Error.
func (s *Service) logRejection(msg, ref string, err error) {
	if appErr, ok := apperror.As(err); ok && appErr.HTTPStatus() < 500 {
		s.logger.Warn(msg, map[string]interface{}{"ref": ref, "category": appErr.Category(), "error": err.Error()})
		return
	}
	s.logger.Error(msg, err)
}
