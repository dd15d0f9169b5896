// Package events publishes domain events to the message broker.
package events

import (
	"context"
	"time"
)

const (
	RoutingReservationCreated  = "reservation.created"
	RoutingReservationApproved = "reservation.approved"
)

type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// ReservationEvent is the body of the reservation.* messages.
type ReservationEvent struct {
	ReservationID   int64     `json:"reservation_id"`
	SessionID       int64     `json:"session_id"`
	DogID           int64     `json:"dog_id"`
	EstablishmentID int64     `json:"establishment_id"`
	IsApproved      bool      `json:"is_approved"`
	BeginDate       time.Time `json:"begin_date"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }
