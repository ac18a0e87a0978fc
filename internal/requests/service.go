package requests

import (
	"context"
	"time"

	"github.com/ErikArmenta/SistemaGestionSensores/internal/catalog"
	"github.com/ErikArmenta/SistemaGestionSensores/internal/metrics"
	"github.com/ErikArmenta/SistemaGestionSensores/internal/session"
	"github.com/ErikArmenta/SistemaGestionSensores/pkg/models"

	"go.uber.org/zap"
)

// Service implementa el formulario de solicitud: validación de campos,
// construcción de la solicitud con los datos del sensor elegido y el commit
// a través del repositorio. El estado de sesión solo cambia cuando el
// repositorio confirmó la escritura.
type Service struct {
	repository Repository
	metrics    *metrics.Metrics
	log        *zap.Logger

	// now es reemplazable en pruebas.
	now func() time.Time
}

func NewService(repository Repository, m *metrics.Metrics, log *zap.Logger) *Service {
	return &Service{
		repository: repository,
		metrics:    m,
		log:        log,
		now:        time.Now,
	}
}

// EnsureLoaded puebla la sesión desde el repositorio una sola vez. Si la
// carga falla, la sesión queda con lista vacía y el error se devuelve para
// reportarlo; la vista sigue funcionando.
func (s *Service) EnsureLoaded(ctx context.Context, sess *session.Session) error {
	if sess.Loaded() {
		return nil
	}
	return s.refresh(ctx, sess)
}

// Reload descarta la cache del repositorio y repuebla la sesión; es el botón
// manual de "recargar datos".
func (s *Service) Reload(ctx context.Context, sess *session.Session) error {
	s.repository.Invalidate()
	return s.refresh(ctx, sess)
}

func (s *Service) refresh(ctx context.Context, sess *session.Session) error {
	all, err := s.repository.LoadAll(ctx)
	if err != nil {
		sess.SetRequests(nil)
		return err
	}
	sess.SetRequests(all)
	return nil
}

// Submit valida el formulario y, si pasa, persiste la solicitud y actualiza
// la sesión. Con error de validación o de repositorio no cambia nada: el
// formulario sigue abierto y el usuario reintenta.
func (s *Service) Submit(ctx context.Context, sess *session.Session, form models.CreateSensorRequest) (models.SensorRequest, error) {
	sensor, ok := sess.Selected()
	if !ok || (form.SensorID != 0 && form.SensorID != sensor.ID) {
		sensor, ok = catalog.FindByID(form.SensorID)
	}
	if !ok {
		s.metrics.Submissions.WithLabelValues("sin_sensor").Inc()
		return models.SensorRequest{}, ErrNoSensorSelected
	}

	if err := validate(form); err != nil {
		s.metrics.Submissions.WithLabelValues("invalida").Inc()
		return models.SensorRequest{}, err
	}

	request := models.SensorRequest{
		Timestamp:  s.now().Format(models.TimestampLayout),
		Requester:  form.Requester,
		EmployeeID: form.EmployeeID,
		Line:       form.Line,
		Station:    form.Station,
		Quantity:   form.Quantity,
		Shift:      form.Shift,
		Reason:     form.Reason,
		PartNumber: sensor.PartNumber,
		SensorName: sensor.Name,
	}

	if err := s.repository.Append(ctx, request); err != nil {
		s.metrics.Submissions.WithLabelValues("error_repositorio").Inc()
		return models.SensorRequest{}, err
	}

	sess.AppendRequest(request)
	sess.CloseModal()
	s.metrics.Submissions.WithLabelValues("ok").Inc()
	s.log.Info("Solicitud registrada",
		zap.String("sensor", request.SensorName),
		zap.String("linea", request.Line),
		zap.Int("cantidad", request.Quantity),
	)

	return request, nil
}

// validate revisa presencia de los seis campos obligatorios, cantidad mínima
// y que el turno sea uno del catálogo. No hay más validación que esta.
func validate(form models.CreateSensorRequest) error {
	var missing []string

	if form.Requester == "" {
		missing = append(missing, "nombre")
	}
	if form.EmployeeID == "" {
		missing = append(missing, "nómina")
	}
	if form.Line == "" {
		missing = append(missing, "línea")
	}
	if form.Station == "" {
		missing = append(missing, "estación/máquina")
	}
	if form.Quantity < 1 {
		missing = append(missing, "cantidad")
	}
	if !models.ValidShift(form.Shift) {
		missing = append(missing, "turno")
	}
	if form.Reason == "" {
		missing = append(missing, "motivo")
	}

	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
