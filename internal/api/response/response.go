// Package response padroniza o corpo JSON de sucesso e de erro dos handlers.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	apperror "gofulfill/internal/errors"
	"gofulfill/internal/pkg/logger"
)

// Write envia data com successStatus quando err é nil; caso contrário traduz err
// para o status HTTP e o corpo domain.ErrorResponse.
func Write(w http.ResponseWriter, r *http.Request, log logger.Logger, data interface{}, err error, successStatus int) {
	if err == nil {
		// Sucesso
		if data == nil {
			w.WriteHeader(successStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)
		if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
			log.Error("Falha ao codificar JSON de resposta", jsonErr)
		}
		return
	}

	// TRATAMENTO DE ERROS
	body := apperror.NewErrorResponse(err)

	if body.Code >= 500 {
		log.Error(fmt.Sprintf("Erro de Servidor: %s", body.Category), err)
	} else {
		// Erros de cliente (4xx) são esperados: ficam em debug.
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", body.Code, body.Category), map[string]interface{}{
			"method": r.Method,
			"path":   r.URL.Path,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(body.Code)
	if jsonErr := json.NewEncoder(w).Encode(body); jsonErr != nil {
		log.Error("Falha ao codificar JSON de erro", jsonErr)
	}
}

// Decode lê o corpo JSON em dst. Payload malformado vira BadRequestError.
func Decode(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperror.NewBadRequestError("Payload inválido. Verifique o formato JSON.")
	}
	return nil
}
