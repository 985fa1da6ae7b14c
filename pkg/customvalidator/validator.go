// Archivo: pkg/customvalidator/validator.go

package customvalidator

import (
	"github.com/go-playground/validator/v10"

	"fleet-system/pkg/constants"
)

// RegisterCustomValidations registra todas las reglas propias del dominio
// en el validador que se le pasa.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("work_type", isWorkType); err != nil {
		return err
	}
	if err := v.RegisterValidation("facility", isFacility); err != nil {
		return err
	}
	if err := v.RegisterValidation("ticket_status", isTicketStatus); err != nil {
		return err
	}
	return nil
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

func isWorkType(fl validator.FieldLevel) bool {
	return oneOf(fl.Field().String(), constants.AllWorkTypes)
}

func isFacility(fl validator.FieldLevel) bool {
	return oneOf(fl.Field().String(), constants.AllFacilities)
}

func isTicketStatus(fl validator.FieldLevel) bool {
	return oneOf(fl.Field().String(), constants.AllStatuses)
}
