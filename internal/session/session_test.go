package session

import (
	"testing"
	"time"

	"github.com/ErikArmenta/SistemaGestionSensores/pkg/models"

	"github.com/stretchr/testify/assert"
)

func TestSessionLifecycle(t *testing.T) {
	sess := &Session{ID: "s1"}

	assert.False(t, sess.Loaded())
	assert.Empty(t, sess.Requests())

	sess.SetRequests([]models.SensorRequest{{Requester: "Ana"}})
	assert.True(t, sess.Loaded())
	assert.Len(t, sess.Requests(), 1)

	sess.AppendRequest(models.SensorRequest{Requester: "Luis"})
	assert.Len(t, sess.Requests(), 2)
}

func TestRequestsReturnsACopy(t *testing.T) {
	sess := &Session{ID: "s1"}
	sess.SetRequests([]models.SensorRequest{{Requester: "Ana"}})

	view := sess.Requests()
	view[0].Requester = "otro"

	assert.Equal(t, "Ana", sess.Requests()[0].Requester)
}

func TestSelectOpensModal(t *testing.T) {
	sess := &Session{ID: "s1"}

	_, ok := sess.Selected()
	assert.False(t, ok)
	assert.False(t, sess.ModalVisible())

	sess.Select(models.SensorRecord{ID: 11, Name: "Sensor MARPOSS"})

	selected, ok := sess.Selected()
	assert.True(t, ok)
	assert.Equal(t, 11, selected.ID)
	assert.True(t, sess.ModalVisible())

	sess.CloseModal()
	assert.False(t, sess.ModalVisible())

	// cancelar no borra la selección ni la lista
	_, ok = sess.Selected()
	assert.True(t, ok)
}

func TestManagerReusesSessionByID(t *testing.T) {
	m := &Manager{sessions: make(map[string]*Session), idleTTL: time.Hour}

	first := m.Acquire("")
	again := m.Acquire(first.ID)

	assert.Same(t, first, again)
	assert.Equal(t, 1, m.Count())

	other := m.Acquire("no-existe")
	assert.NotEqual(t, first.ID, other.ID)
	assert.Equal(t, 2, m.Count())
}
