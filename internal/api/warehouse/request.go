package warehouse

import (
	"gofulfill/internal/domain"
	apperror "gofulfill/internal/errors"
)

// warehouseRequest é o corpo aceito na criação e na substituição.
// Capacidade e estoque são ponteiros para distinguir "ausente" de zero.
type warehouseRequest struct {
	BusinessUnitCode string `json:"businessUnitCode"`
	Location         string `json:"location"`
	Capacity         *int   `json:"capacity"`
	Stock            *int   `json:"stock"`
}

func (req warehouseRequest) toDomain() (domain.Warehouse, error) {
	if req.Capacity == nil {
		return domain.Warehouse{}, apperror.NewFieldError("capacity", "A capacidade é obrigatória.")
	}
	if req.Stock == nil {
		return domain.Warehouse{}, apperror.NewFieldError("stock", "O estoque é obrigatório.")
	}
	return domain.Warehouse{
		BusinessUnitCode: req.BusinessUnitCode,
		Location:         req.Location,
		Capacity:         *req.Capacity,
		Stock:            *req.Stock,
	}, nil
}
