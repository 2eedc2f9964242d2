package kafka

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartUpdatedPayload struct {
	DeviceID  string `json:"device_id"`
	ItemCount int    `json:"item_count"`
}

func TestNewEvent(t *testing.T) {
	payload := cartUpdatedPayload{DeviceID: "device-1", ItemCount: 3}

	event, err := NewEvent("storefront.cart.updated", "device-1", "cart", "storefront-service", payload)
	require.NoError(t, err)

	assert.Equal(t, "storefront.cart.updated", event.Type)
	assert.Equal(t, "device-1", event.AggregateID)
	assert.Equal(t, "cart", event.AggregateType)
	assert.Equal(t, "storefront-service", event.Source)
	assert.Equal(t, 1, event.SchemaVersion)
	assert.False(t, event.OccurredAt.IsZero())

	_, err = uuid.Parse(event.ID)
	assert.NoError(t, err, "event ID is a UUID")
}

func TestNewEvent_UnmarshalableData(t *testing.T) {
	_, err := NewEvent("t", "a", "agg", "src", make(chan int))
	assert.Error(t, err)
}

func TestEvent_RoundTrip(t *testing.T) {
	original, err := NewEvent("storefront.order.placed", "o1", "order", "storefront-service",
		cartUpdatedPayload{DeviceID: "device-1", ItemCount: 2})
	require.NoError(t, err)
	original.WithCorrelationID("corr-1")

	raw, err := original.Marshal()
	require.NoError(t, err)

	decoded, err := UnmarshalEvent(raw)
	require.NoError(t, err)
	assert.Equal(t, original.ID, decoded.ID)
	assert.Equal(t, "corr-1", decoded.CorrelationID)

	var payload cartUpdatedPayload
	require.NoError(t, decoded.DecodePayload(&payload))
	assert.Equal(t, "device-1", payload.DeviceID)
	assert.Equal(t, 2, payload.ItemCount)
}

func TestUnmarshalEvent_Malformed(t *testing.T) {
	_, err := UnmarshalEvent([]byte("{broken"))
	assert.Error(t, err)
}

func TestEvent_WithMetadata(t *testing.T) {
	event, err := NewEvent("storefront.order.placed", "o1", "order", "storefront-service",
		cartUpdatedPayload{DeviceID: "device-1"})
	require.NoError(t, err)

	event.WithMetadata("device_id", "device-1").WithMetadata("channel", "mobile")

	raw, err := event.Marshal()
	require.NoError(t, err)

	decoded, err := UnmarshalEvent(raw)
	require.NoError(t, err)
	assert.Equal(t, "device-1", decoded.Metadata["device_id"])
	assert.Equal(t, "mobile", decoded.Metadata["channel"])
}
