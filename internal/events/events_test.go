package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/easyearn/admin-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProducer records sent messages; unimplemented methods panic via the nil embed.
type fakeProducer struct {
	pulsar.Producer
	sent []*pulsar.ProducerMessage
	err  error
}

func (f *fakeProducer) Send(ctx context.Context, msg *pulsar.ProducerMessage) (pulsar.MessageID, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, msg)
	return nil, nil
}

func TestPublish(t *testing.T) {
	producer := &fakeProducer{}
	publisher := &EventPublisher{producer: producer}

	event := models.NewAuditEvent(models.AuditParticipationApproved, "p1", "Gift card")
	require.NoError(t, publisher.Publish(context.Background(), event))

	require.Len(t, producer.sent, 1)
	msg := producer.sent[0]
	assert.Equal(t, event.ID.String(), msg.Key)
	assert.Equal(t, models.AuditParticipationApproved, msg.Properties["action"])

	var decoded models.AuditEvent
	require.NoError(t, json.Unmarshal(msg.Payload, &decoded))
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, "p1", decoded.Subject)
}

func TestPublish_SendError(t *testing.T) {
	publisher := &EventPublisher{producer: &fakeProducer{err: errors.New("broker down")}}

	err := publisher.Publish(context.Background(), models.NewAuditEvent(models.AuditNotificationSent, "Hello", ""))
	assert.ErrorContains(t, err, "broker down")
}

func TestDecodeAuditEvent(t *testing.T) {
	event := models.NewAuditEvent(models.AuditParticipationRejected, "p9", "")
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	decoded, err := DecodeAuditEvent(payload)
	require.NoError(t, err)
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, models.AuditParticipationRejected, decoded.Action)
	assert.True(t, event.CreatedAt.Equal(decoded.CreatedAt))

	_, err = DecodeAuditEvent([]byte(`not json`))
	assert.Error(t, err)

	_, err = DecodeAuditEvent([]byte(`{"subject": "p1"}`))
	assert.Error(t, err)
}
