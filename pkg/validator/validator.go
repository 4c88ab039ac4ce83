package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse descreve um campo reprovado na validação.
type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

// ValidateStruct valida as tags `validate` de um struct e devolve os campos reprovados.
func ValidateStruct(data interface{}) []*ErrorResponse {
	var errs []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errs = append(errs, &element)
		}
	}
	return errs
}

// Message resume os erros de validação numa única mensagem legível,
// no formato exibido pelos toasts do front ("Preencha todos os campos obrigatórios").
func Message(errs []*ErrorResponse) string {
	if len(errs) == 0 {
		return ""
	}
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		parts := strings.Split(e.FailedField, ".")
		fields = append(fields, parts[len(parts)-1])
	}
	return fmt.Sprintf("campos obrigatórios ou inválidos: %s", strings.Join(fields, ", "))
}
