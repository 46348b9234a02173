package sync_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/attractions-service/internal/domain"
	"github.com/attractions-service/internal/pkg/errors"
	workersync "github.com/attractions-service/internal/worker/sync"
)

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// MockSyncer is a mock of the sync usecase
type MockSyncer struct {
	mock.Mock
}

func (m *MockSyncer) SyncAttraction(ctx context.Context, attractionID int64, force bool) (*domain.SyncPayload, error) {
	args := m.Called(ctx, attractionID, force)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncPayload), args.Error(1)
}

func newWorker(stream *MockStreamRepository, syncer *MockSyncer, maxRetries int) *workersync.AttractionSyncWorker {
	return workersync.NewAttractionSyncWorker(stream, syncer, "test-group", maxRetries, zap.NewNop())
}

func syncMessage(t *testing.T, id string, event domain.AttractionSyncEvent) domain.StreamMessage {
	t.Helper()
	data, err := json.Marshal(event)
	if err != nil {
		t.Fatal(err)
	}
	return domain.StreamMessage{ID: id, Data: string(data)}
}

func TestAttractionSyncWorker_Name(t *testing.T) {
	w := newWorker(&MockStreamRepository{}, &MockSyncer{}, 3)
	assert.Equal(t, "attraction-sync", w.Name())
}

func TestAttractionSyncWorker_Stop(t *testing.T) {
	w := newWorker(&MockStreamRepository{}, &MockSyncer{}, 3)

	assert.NoError(t, w.Stop())
	// Calling stop multiple times should be safe
	assert.NoError(t, w.Stop())
}

func TestAttractionSyncWorker_ProcessesEvent(t *testing.T) {
	mockStream := &MockStreamRepository{}
	mockSyncer := &MockSyncer{}
	w := newWorker(mockStream, mockSyncer, 3)

	requestID := uuid.New()
	msgChan := make(chan domain.StreamMessage, 1)
	msgChan <- syncMessage(t, "1234567890-0", domain.AttractionSyncEvent{
		RequestID:    requestID,
		AttractionID: 42,
		Force:        true,
	})
	close(msgChan)

	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamAttractionSync, "test-group").
		Return(nil)
	mockStream.On("ConsumeStream", mock.Anything, domain.StreamAttractionSync, "test-group", mock.AnythingOfType("string")).
		Return((<-chan domain.StreamMessage)(msgChan), nil)

	// Флаг force из события доходит до синхронизации
	mockSyncer.On("SyncAttraction", mock.Anything, int64(42), true).
		Return(&domain.SyncPayload{}, nil)

	mockStream.On("PublishToStream", mock.Anything, domain.StreamAttractionSynced,
		mock.MatchedBy(func(event domain.AttractionSyncedEvent) bool {
			return event.RequestID == requestID && event.AttractionID == 42 && event.Error == ""
		})).Return(nil)
	mockStream.On("AckMessage", mock.Anything, domain.StreamAttractionSync, "test-group", "1234567890-0").
		Return(nil)

	ctx := context.Background()
	done := make(chan error, 1)
	go func() {
		done <- w.Start(ctx)
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Worker did not stop after channel close")
	}

	mockStream.AssertExpectations(t)
	mockSyncer.AssertExpectations(t)
}

func TestAttractionSyncWorker_PublishesErrorEvent(t *testing.T) {
	mockStream := &MockStreamRepository{}
	mockSyncer := &MockSyncer{}
	w := newWorker(mockStream, mockSyncer, 1)

	requestID := uuid.New()
	msgChan := make(chan domain.StreamMessage, 1)
	msgChan <- syncMessage(t, "1234567890-0", domain.AttractionSyncEvent{
		RequestID:    requestID,
		AttractionID: 404,
	})
	close(msgChan)

	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamAttractionSync, "test-group").
		Return(nil)
	mockStream.On("ConsumeStream", mock.Anything, domain.StreamAttractionSync, "test-group", mock.AnythingOfType("string")).
		Return((<-chan domain.StreamMessage)(msgChan), nil)

	mockSyncer.On("SyncAttraction", mock.Anything, int64(404), false).
		Return(nil, errors.ErrAttractionNotFound)

	mockStream.On("PublishToStream", mock.Anything, domain.StreamAttractionSynced,
		mock.MatchedBy(func(event domain.AttractionSyncedEvent) bool {
			return event.AttractionID == 404 && event.Error != ""
		})).Return(nil)
	mockStream.On("AckMessage", mock.Anything, domain.StreamAttractionSync, "test-group", "1234567890-0").
		Return(nil)

	done := make(chan error, 1)
	go func() {
		done <- w.Start(context.Background())
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Worker did not stop after channel close")
	}

	mockStream.AssertExpectations(t)
	mockSyncer.AssertExpectations(t)
}

func TestAttractionSyncWorker_SkipsMalformedMessage(t *testing.T) {
	mockStream := &MockStreamRepository{}
	mockSyncer := &MockSyncer{}
	w := newWorker(mockStream, mockSyncer, 3)

	msgChan := make(chan domain.StreamMessage, 1)
	msgChan <- domain.StreamMessage{ID: "1234567890-0", Data: "not json"}
	close(msgChan)

	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamAttractionSync, "test-group").
		Return(nil)
	mockStream.On("ConsumeStream", mock.Anything, domain.StreamAttractionSync, "test-group", mock.AnythingOfType("string")).
		Return((<-chan domain.StreamMessage)(msgChan), nil)
	mockStream.On("AckMessage", mock.Anything, domain.StreamAttractionSync, "test-group", "1234567890-0").
		Return(nil)

	done := make(chan error, 1)
	go func() {
		done <- w.Start(context.Background())
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Worker did not stop after channel close")
	}

	mockSyncer.AssertNotCalled(t, "SyncAttraction")
	mockStream.AssertExpectations(t)
}
