package cache

import (
	"context"
	"sync"
	"time"
)

// LoadFunc produce el valor fresco cuando la cache expiró o fue invalidada.
type LoadFunc[T any] func(ctx context.Context) (T, error)

// TimedCache envuelve una función de lectura remota con una ventana de
// validez fija y una operación de invalidación manual. Un error del load no
// se cachea: la siguiente lectura vuelve a intentar.
type TimedCache[T any] struct {
	mu       sync.Mutex
	load     LoadFunc[T]
	ttl      time.Duration
	value    T
	loadedAt time.Time
	valid    bool

	// now es reemplazable en pruebas.
	now func() time.Time
}

func NewTimedCache[T any](ttl time.Duration, load LoadFunc[T]) *TimedCache[T] {
	return &TimedCache[T]{
		load: load,
		ttl:  ttl,
		now:  time.Now,
	}
}

// Get devuelve el valor cacheado si sigue dentro de la ventana; si no,
// ejecuta load y guarda el resultado.
func (c *TimedCache[T]) Get(ctx context.Context) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && c.now().Sub(c.loadedAt) < c.ttl {
		return c.value, true, nil
	}

	value, err := c.load(ctx)
	if err != nil {
		var zero T
		return zero, false, err
	}

	c.value = value
	c.loadedAt = c.now()
	c.valid = true

	return value, false, nil
}

// Invalidate descarta el valor cacheado. La siguiente Get vuelve a leer.
func (c *TimedCache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
}
