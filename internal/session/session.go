package session

import (
	"sync"
	"time"

	"github.com/ErikArmenta/SistemaGestionSensores/pkg/models"
)

// Session es el estado de navegación de un usuario: la lista de solicitudes
// en memoria, el sensor seleccionado y la visibilidad del formulario modal.
// Vive mientras el usuario navega y se descarta tras inactividad.
type Session struct {
	ID string

	mu           sync.Mutex
	loaded       bool
	requests     []models.SensorRequest
	selected     *models.SensorRecord
	modalVisible bool
	lastSeen     time.Time
}

// Loaded reporta si la sesión ya fue poblada desde el repositorio.
func (s *Session) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// SetRequests reemplaza la lista completa y marca la sesión como cargada.
func (s *Session) SetRequests(requests []models.SensorRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = make([]models.SensorRequest, len(requests))
	copy(s.requests, requests)
	s.loaded = true
}

// Requests devuelve una copia de la lista actual; los renderers no deben
// poder mutar el estado compartido.
func (s *Session) Requests() []models.SensorRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.SensorRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// AppendRequest agrega una solicitud recién confirmada por el repositorio.
func (s *Session) AppendRequest(request models.SensorRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, request)
}

// Select fija el sensor elegido y abre el formulario modal.
func (s *Session) Select(record models.SensorRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	selected := record
	s.selected = &selected
	s.modalVisible = true
}

// Selected devuelve el sensor elegido, si hay uno.
func (s *Session) Selected() (models.SensorRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return models.SensorRecord{}, false
	}
	return *s.selected, true
}

// ModalVisible reporta si el formulario está abierto.
func (s *Session) ModalVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modalVisible
}

// CloseModal cierra el formulario sin tocar nada más; es lo único que pasa
// al cancelar.
func (s *Session) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modalVisible = false
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) idleSince(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen.Before(cutoff)
}
