package queue_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/ligue-outreach/internal/infra/queue"
)

type MockReconciler struct {
	mock.Mock
}

func (m *MockReconciler) Reconcile(ctx context.Context, event queue.ReplyEventPayload) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// fakeAcknowledger registra o destino da mensagem (ack ou nack).
type fakeAcknowledger struct {
	acked   bool
	nacked  bool
	requeue bool
}

func (f *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	f.acked = true
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	f.nacked = true
	f.requeue = requeue
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	f.nacked = true
	f.requeue = requeue
	return nil
}

func delivery(ack *fakeAcknowledger, body []byte) amqp.Delivery {
	return amqp.Delivery{Acknowledger: ack, Body: body}
}

func TestWorkerHandleAcksOnSuccess(t *testing.T) {
	reconciler := new(MockReconciler)
	event := queue.ReplyEventPayload{Email: "jane@x.com", Name: "Jane", Source: "WEBHOOK"}
	reconciler.On("Reconcile", mock.Anything, event).Return(nil)

	body, _ := json.Marshal(event)
	ack := &fakeAcknowledger{}

	w := queue.NewWorker(nil, reconciler)
	w.Handle(delivery(ack, body))

	assert.True(t, ack.acked)
	assert.False(t, ack.nacked)
	reconciler.AssertExpectations(t)
}

func TestWorkerHandleNacksBadJSON(t *testing.T) {
	reconciler := new(MockReconciler)
	ack := &fakeAcknowledger{}

	w := queue.NewWorker(nil, reconciler)
	w.Handle(delivery(ack, []byte("{nope")))

	assert.True(t, ack.nacked)
	assert.False(t, ack.requeue) // sem requeue, senão a fila trava
	reconciler.AssertNotCalled(t, "Reconcile", mock.Anything, mock.Anything)
}

func TestWorkerHandleNacksOnReconcileError(t *testing.T) {
	reconciler := new(MockReconciler)
	reconciler.On("Reconcile", mock.Anything, mock.Anything).Return(errors.New("db down"))

	body, _ := json.Marshal(queue.ReplyEventPayload{Email: "jane@x.com"})
	ack := &fakeAcknowledger{}

	w := queue.NewWorker(nil, reconciler)
	w.Handle(delivery(ack, body))

	assert.True(t, ack.nacked)
	assert.False(t, ack.acked)
	assert.False(t, ack.requeue)
}
