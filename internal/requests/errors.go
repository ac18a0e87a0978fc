package requests

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/googleapi"
)

// RepositoryError envuelve cualquier falla del backing store. Transient
// distingue fallas de red/cuota (reintentables algún día) de problemas de
// configuración como credenciales inválidas; hoy ambas se reportan igual.
type RepositoryError struct {
	Op        string
	Transient bool
	Err       error
}

func (e *RepositoryError) Error() string {
	kind := "configuración"
	if e.Transient {
		kind = "transitorio"
	}
	return fmt.Sprintf("repositorio no disponible (%s, %s): %v", e.Op, kind, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// wrapRepositoryError clasifica el error remoto. 401/403 son credenciales o
// permisos de la hoja; todo lo demás se asume transitorio.
func wrapRepositoryError(op string, err error) *RepositoryError {
	transient := true

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == 401 || apiErr.Code == 403 {
			transient = false
		}
	}

	return &RepositoryError{Op: op, Transient: transient, Err: err}
}

// ValidationError acumula los campos requeridos que faltan o están fuera de
// rango. Bloquea solo el intento de envío en curso.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "Completa todos los campos obligatorios: " + strings.Join(e.Fields, ", ")
}

// ErrNoSensorSelected se reporta cuando llega un envío sin sensor elegido.
var ErrNoSensorSelected = errors.New("no hay sensor seleccionado")
