package domain

import (
	"time"
)

// Product representa um item do catálogo. O motor de alocação só verifica existência.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store representa uma loja atendida pelos armazéns.
type Store struct {
	ID                      string    `json:"id"`
	Name                    string    `json:"name"`
	QuantityProductsInStock int       `json:"quantityProductsInStock"`
	CreatedAt               time.Time `json:"createdAt"`
}
