package listener

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opne/internal/app/domains/model"
	"opne/internal/app/pkg/logger"
)

func newTestListener() *ChangeListener {
	return NewChangeListener(nil, nil, &Config{
		QueueName:    "order_events",
		Timeout:      3 * time.Second,
		TTR:          30 * time.Second,
		PollInterval: time.Second,
	}, logger.NopLogger{})
}

func validEvent() *model.OrderChangeEvent {
	return &model.OrderChangeEvent{
		RequestID: "req-1",
		Event:     model.EventInsert,
		Current: &model.OrderSnapshot{
			ID:          "order-1",
			OrderNumber: "ORD-00000001",
		},
		EmittedAt: time.Now().Unix(),
	}
}

func TestParseMessage(t *testing.T) {
	l := newTestListener()

	data, err := json.Marshal(validEvent())
	require.NoError(t, err)

	event, err := l.parseMessage(data)
	require.NoError(t, err)
	assert.Equal(t, model.EventInsert, event.Event)
	assert.Equal(t, "order-1", event.Current.ID)
}

func TestParseMessageRejectsGarbage(t *testing.T) {
	l := newTestListener()

	_, err := l.parseMessage([]byte("{not json"))
	require.Error(t, err)
}

func TestParseMessageRejectsUnknownEvent(t *testing.T) {
	l := newTestListener()

	evt := validEvent()
	evt.Event = "truncate"
	data, _ := json.Marshal(evt)

	_, err := l.parseMessage(data)
	require.Error(t, err)
}

func TestParseMessageRejectsMissingSnapshot(t *testing.T) {
	l := newTestListener()

	evt := validEvent()
	evt.Current = nil
	data, _ := json.Marshal(evt)

	_, err := l.parseMessage(data)
	require.Error(t, err)

	evt = validEvent()
	evt.Current.ID = ""
	data, _ = json.Marshal(evt)

	_, err = l.parseMessage(data)
	require.Error(t, err)
}

func TestShutdownFlag(t *testing.T) {
	l := newTestListener()

	assert.False(t, l.closing.Load())
	l.Shutdown()
	assert.True(t, l.closing.Load())

	// 重复调用无副作用
	l.Shutdown()
	assert.True(t, l.closing.Load())
}
