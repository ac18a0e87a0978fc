package requests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ErikArmenta/SistemaGestionSensores/internal/metrics"
	"github.com/ErikArmenta/SistemaGestionSensores/internal/session"
	"github.com/ErikArmenta/SistemaGestionSensores/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) LoadAll(ctx context.Context) ([]models.SensorRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SensorRequest), args.Error(1)
}

func (m *MockRepository) Append(ctx context.Context, request models.SensorRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockRepository) Invalidate() {
	m.Called()
}

func newTestService(repo Repository) *Service {
	s := NewService(repo, metrics.New(func() int { return 0 }), zap.NewNop())
	s.now = func() time.Time {
		return time.Date(2026, 3, 1, 8, 15, 0, 0, time.Local)
	}
	return s
}

func marposs() models.SensorRecord {
	return models.SensorRecord{
		ID:         11,
		Name:       "Sensor MARPOSS",
		PartNumber: "31 T19 013 009",
	}
}

func validForm() models.CreateSensorRequest {
	return models.CreateSensorRequest{
		SensorID:   11,
		Requester:  "Ana Ruiz",
		EmployeeID: "12345",
		Line:       "L3",
		Station:    "CNC-2",
		Quantity:   2,
		Shift:      "Matutino",
		Reason:     "desgaste",
	}
}

func TestSubmitValidRequest(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	sess := &session.Session{ID: "s1"}
	sess.SetRequests(nil)
	sess.Select(marposs())

	mockRepo.On("Append", mock.Anything, mock.Anything).Return(nil)

	created, err := service.Submit(context.Background(), sess, validForm())

	assert.NoError(t, err)
	assert.Equal(t, "Sensor MARPOSS", created.SensorName)
	assert.Equal(t, "31 T19 013 009", created.PartNumber)
	assert.Equal(t, 2, created.Quantity)
	assert.Equal(t, "2026-03-01 08:15:00", created.Timestamp)

	assert.Len(t, sess.Requests(), 1)
	assert.Equal(t, created, sess.Requests()[0])
	assert.False(t, sess.ModalVisible())
	mockRepo.AssertExpectations(t)
}

func TestSubmitMissingFieldsNeverTouchesRepository(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CreateSensorRequest)
	}{
		{"sin nombre", func(f *models.CreateSensorRequest) { f.Requester = "" }},
		{"sin nómina", func(f *models.CreateSensorRequest) { f.EmployeeID = "" }},
		{"sin línea", func(f *models.CreateSensorRequest) { f.Line = "" }},
		{"sin estación", func(f *models.CreateSensorRequest) { f.Station = "" }},
		{"sin motivo", func(f *models.CreateSensorRequest) { f.Reason = "" }},
		{"cantidad cero", func(f *models.CreateSensorRequest) { f.Quantity = 0 }},
		{"turno vacío", func(f *models.CreateSensorRequest) { f.Shift = "" }},
		{"turno inventado", func(f *models.CreateSensorRequest) { f.Shift = "Madrugada" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := newTestService(mockRepo)

			sess := &session.Session{ID: "s1"}
			sess.SetRequests(nil)
			sess.Select(marposs())

			form := validForm()
			tt.mutate(&form)

			_, err := service.Submit(context.Background(), sess, form)

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Empty(t, sess.Requests())
			assert.True(t, sess.ModalVisible())
			mockRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
		})
	}
}

func TestSubmitRepositoryFailureLeavesSessionUntouched(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	sess := &session.Session{ID: "s1"}
	sess.SetRequests(nil)
	sess.Select(marposs())

	mockRepo.On("Append", mock.Anything, mock.Anything).
		Return(&RepositoryError{Op: "append", Transient: true, Err: errors.New("quota exceeded")})

	_, err := service.Submit(context.Background(), sess, validForm())

	var repoErr *RepositoryError
	assert.ErrorAs(t, err, &repoErr)
	assert.Empty(t, sess.Requests())
	assert.True(t, sess.ModalVisible())
}

func TestSubmitWithoutSelectionFallsBackToCatalog(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	sess := &session.Session{ID: "s1"}
	sess.SetRequests(nil)

	mockRepo.On("Append", mock.Anything, mock.Anything).Return(nil)

	created, err := service.Submit(context.Background(), sess, validForm())

	assert.NoError(t, err)
	assert.Equal(t, "Sensor MARPOSS", created.SensorName)
}

func TestSubmitWithoutAnySensor(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	sess := &session.Session{ID: "s1"}
	sess.SetRequests(nil)

	form := validForm()
	form.SensorID = 0

	_, err := service.Submit(context.Background(), sess, form)

	assert.ErrorIs(t, err, ErrNoSensorSelected)
	mockRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestEnsureLoadedPopulatesOnce(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	sess := &session.Session{ID: "s1"}

	mockRepo.On("LoadAll", mock.Anything).
		Return([]models.SensorRequest{{Requester: "Ana"}}, nil).Once()

	assert.NoError(t, service.EnsureLoaded(context.Background(), sess))
	assert.NoError(t, service.EnsureLoaded(context.Background(), sess))
	assert.Len(t, sess.Requests(), 1)
	mockRepo.AssertExpectations(t)
}

func TestEnsureLoadedFailureYieldsEmptyList(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	sess := &session.Session{ID: "s1"}

	mockRepo.On("LoadAll", mock.Anything).
		Return(nil, &RepositoryError{Op: "load_all", Transient: true, Err: errors.New("timeout")})

	err := service.EnsureLoaded(context.Background(), sess)

	assert.Error(t, err)
	assert.True(t, sess.Loaded())
	assert.Empty(t, sess.Requests())
}

func TestReloadInvalidatesAndRefetches(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	sess := &session.Session{ID: "s1"}
	sess.SetRequests([]models.SensorRequest{{Requester: "vieja"}})

	mockRepo.On("Invalidate").Return()
	mockRepo.On("LoadAll", mock.Anything).
		Return([]models.SensorRequest{{Requester: "Ana"}, {Requester: "Luis"}}, nil)

	assert.NoError(t, service.Reload(context.Background(), sess))
	assert.Len(t, sess.Requests(), 2)
	mockRepo.AssertExpectations(t)
}
