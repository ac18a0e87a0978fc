package requests

import (
	"context"
	"time"

	"github.com/ErikArmenta/SistemaGestionSensores/internal/cache"
	"github.com/ErikArmenta/SistemaGestionSensores/internal/integrations/googlesheets"
	"github.com/ErikArmenta/SistemaGestionSensores/internal/metrics"
	"github.com/ErikArmenta/SistemaGestionSensores/pkg/models"

	"go.uber.org/zap"
)

// Sheet es lo que el repositorio necesita del backing store.
type Sheet interface {
	ReadAll(ctx context.Context) ([][]interface{}, error)
	AppendRow(ctx context.Context, row []interface{}) error
}

// Repository persiste solicitudes. Las escrituras son siempre al final; no
// existe actualizar ni borrar.
type Repository interface {
	LoadAll(ctx context.Context) ([]models.SensorRequest, error)
	Append(ctx context.Context, request models.SensorRequest) error
	Invalidate()
}

// SheetRepository implementa Repository sobre la hoja compartida, con una
// cache de lectura acotada en el tiempo para no pegarle a la API en cada
// render.
type SheetRepository struct {
	sheet   Sheet
	cache   *cache.TimedCache[[]models.SensorRequest]
	metrics *metrics.Metrics
	log     *zap.Logger
	timeout time.Duration
}

func NewSheetRepository(sheet Sheet, ttl, timeout time.Duration, m *metrics.Metrics, log *zap.Logger) *SheetRepository {
	r := &SheetRepository{
		sheet:   sheet,
		metrics: m,
		log:     log,
		timeout: timeout,
	}

	r.cache = cache.NewTimedCache(ttl, func(ctx context.Context) ([]models.SensorRequest, error) {
		values, err := sheet.ReadAll(ctx)
		if err != nil {
			return nil, err
		}
		return googlesheets.ParseRequests(values), nil
	})

	return r
}

// LoadAll devuelve todas las solicitudes de la hoja, sirviendo de la cache
// mientras siga dentro de la ventana. Una falla remota se reporta como
// RepositoryError; el caller decide el fallback (lista vacía).
func (r *SheetRepository) LoadAll(ctx context.Context) ([]models.SensorRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	all, hit, err := r.cache.Get(ctx)
	if err != nil {
		r.metrics.SheetReads.WithLabelValues("error").Inc()
		r.log.Error("Error al cargar datos de la hoja", zap.Error(err))
		return nil, wrapRepositoryError("load_all", err)
	}

	if hit {
		r.metrics.CacheLookups.WithLabelValues("hit").Inc()
	} else {
		r.metrics.CacheLookups.WithLabelValues("miss").Inc()
		r.metrics.SheetReads.WithLabelValues("ok").Inc()
	}

	return all, nil
}

// Append escribe una fila nueva y descarta la cache para que la siguiente
// lectura la observe. Si la escritura falla no se toca nada local.
func (r *SheetRepository) Append(ctx context.Context, request models.SensorRequest) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.sheet.AppendRow(ctx, googlesheets.RequestToRow(request)); err != nil {
		r.metrics.SheetAppends.WithLabelValues("error").Inc()
		r.log.Error("Error al guardar en la hoja", zap.Error(err))
		return wrapRepositoryError("append", err)
	}

	r.metrics.SheetAppends.WithLabelValues("ok").Inc()
	r.cache.Invalidate()
	return nil
}

// Invalidate descarta la cache de lectura; lo dispara el botón de recarga.
func (r *SheetRepository) Invalidate() {
	r.cache.Invalidate()
}
