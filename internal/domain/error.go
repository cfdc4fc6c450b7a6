package domain

// ErrorResponse é a estrutura padronizada para respostas de erro na API.
// @Description Estrutura padronizada para respostas de erro na API.
type ErrorResponse struct {
	Code     int    `json:"code" example:"422"`
	Category string `json:"category" example:"VALIDATION_ERROR"`
	Message  string `json:"message" example:"Erro de Validação: capacity deve ser maior que zero."`
	Field    string `json:"field,omitempty" example:"capacity"`
	Limit    string `json:"limit,omitempty" example:"max_warehouses_per_store"`
	Resource string `json:"resource,omitempty" example:"product"`
}
