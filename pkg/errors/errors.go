package errors

import "fmt"

var (
	// Taller
	ErrUnknownVehicle           = fmt.Errorf("el móvil no existe en el parque automotor")
	ErrVehicleAlreadyInWorkshop = fmt.Errorf("el móvil ya tiene un trabajo activo en el taller")
	ErrInvalidTransition        = fmt.Errorf("cambio de estado no permitido")
	ErrStoreUnreadable          = fmt.Errorf("no se pudo leer el archivo del taller")

	// Planillas
	ErrRosterUnreadable = fmt.Errorf("no se pudo leer la planilla de móviles")
	ErrNoUsableSheets   = fmt.Errorf("la planilla no contiene hojas reconocibles")

	// Generales
	ErrNotFound   = fmt.Errorf("registro no encontrado")
	ErrBadRequest = fmt.Errorf("solicitud inválida")
)

// HttpError lleva el código HTTP y el mensaje para el usuario junto con la
// causa interna y contexto para los logs.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{
		Code:    code,
		Message: message,
		Err:     err,
		Context: context,
	}
}

func (e *HttpError) WithDetails(details interface{}) *HttpError {
	e.Details = details
	return e
}
