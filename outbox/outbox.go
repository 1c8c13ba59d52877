package outbox

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const CollectionName = "outbox"

type EventType string

const (
	// EventTypeSendDieticianWelcomeEmail is consumed by the mailer which delivers the
	// generated credentials to a newly created dietician
	EventTypeSendDieticianWelcomeEmail EventType = "sendDieticianWelcomeEmail"
)

type Event struct {
	Id          primitive.ObjectID `bson:"_id,omitempty"`
	EventType   EventType          `bson:"eventType"`
	CreatedTime time.Time          `bson:"createdTime"`
	Payload     bson.Raw           `bson:"payload"`
}

// DecodePayload unmarshals the payload of the event into v
func (e Event) DecodePayload(v any) error {
	if err := bson.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("unable to decode %s payload: %w", e.EventType, err)
	}
	return nil
}

type SendDieticianWelcomeEmailPayload struct {
	DieticianId    string `bson:"dieticianId"`
	DieticianEmail string `bson:"dieticianEmail"`
	DieticianName  string `bson:"dieticianName"`
}

func NewSendDieticianWelcomeEmailEvent(payload SendDieticianWelcomeEmailPayload) (Event, error) {
	return NewEvent(EventTypeSendDieticianWelcomeEmail, payload)
}

//go:generate go run go.uber.org/mock/mockgen -source=./outbox.go -destination=./test/mock_outbox.go -package test

type Repository interface {
	// Create stores the event. The id and the created time are assigned when missing.
	Create(ctx context.Context, event Event) error
	// FindByType returns the events of the given type, oldest first
	FindByType(ctx context.Context, eventType EventType) ([]Event, error)
	Initialize(ctx context.Context) error
}

func NewEvent(eventType EventType, payload any) (Event, error) {
	raw, err := bson.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("unable to encode %s payload: %w", eventType, err)
	}

	return Event{
		EventType: eventType,
		Payload:   raw,
	}, nil
}
