package domain

import "github.com/google/uuid"

// SystemActorID исполнитель фоновых операций (свипы, вебхуки)
var SystemActorID = uuid.Nil

// OrderEvent событие, переводящее заказ между статусами
type OrderEvent string

const (
	EventCheckout         OrderEvent = "checkout"
	EventPaymentConfirmed OrderEvent = "payment_confirmed"
	EventShip             OrderEvent = "ship"
	EventDeliver          OrderEvent = "deliver"
	EventConfirmReceipt   OrderEvent = "confirm_receipt"
	EventAutoRelease      OrderEvent = "auto_release"
	EventAdminRelease     OrderEvent = "admin_release"
	EventDisputeRelease   OrderEvent = "dispute_release"
	EventOpenDispute      OrderEvent = "open_dispute"
	EventRefund           OrderEvent = "refund"
	EventCancel           OrderEvent = "cancel"
	EventExpire           OrderEvent = "expire"
)

// orderTransitions единственный источник истины для переходов заказа
var orderTransitions = map[OrderStatus]map[OrderEvent]OrderStatus{
	OrderStatusCreated: {
		EventCheckout: OrderStatusAwaitingPayment,
		EventCancel:   OrderStatusCancelled,
	},
	OrderStatusAwaitingPayment: {
		EventPaymentConfirmed: OrderStatusPaid,
		EventCancel:           OrderStatusCancelled,
		EventExpire:           OrderStatusCancelled,
	},
	OrderStatusPaid: {
		EventShip:         OrderStatusInDelivery,
		EventOpenDispute:  OrderStatusDisputed,
		EventAdminRelease: OrderStatusCompleted,
		EventRefund:       OrderStatusRefunded,
	},
	OrderStatusInDelivery: {
		EventDeliver:      OrderStatusDelivered,
		EventOpenDispute:  OrderStatusDisputed,
		EventAdminRelease: OrderStatusCompleted,
		EventRefund:       OrderStatusRefunded,
	},
	OrderStatusDelivered: {
		EventConfirmReceipt: OrderStatusCompleted,
		EventAutoRelease:    OrderStatusCompleted,
		EventAdminRelease:   OrderStatusCompleted,
		EventOpenDispute:    OrderStatusDisputed,
		EventRefund:         OrderStatusRefunded,
	},
	OrderStatusDisputed: {
		EventDisputeRelease: OrderStatusCompleted,
		EventRefund:         OrderStatusRefunded,
	},
}

// Transition возвращает следующий статус или ErrInvalidOrderTransition
func Transition(current OrderStatus, event OrderEvent) (OrderStatus, error) {
	if next, ok := orderTransitions[current][event]; ok {
		return next, nil
	}
	return current, &TransitionError{Entity: "order", From: string(current), Event: string(event)}
}

// CanTransition проверяет допустимость события без применения
func CanTransition(current OrderStatus, event OrderEvent) bool {
	_, err := Transition(current, event)
	return err == nil
}

// HoldsFunds статусы, в которых у заказа есть открытая HELD проводка
func (s OrderStatus) HoldsFunds() bool {
	switch s {
	case OrderStatusPaid, OrderStatusInDelivery, OrderStatusDelivered, OrderStatusDisputed:
		return true
	}
	return false
}

// Terminal конечные статусы заказа
func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderStatusCompleted, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// entryTransitions монотонные переходы проводок
var entryTransitions = map[EntryState][]EntryState{
	EntryStateHeld: {EntryStateAvailable, EntryStateReversed},
}

// CheckEntryTransition проверяет переход состояния проводки
func CheckEntryTransition(from, to EntryState) error {
	for _, allowed := range entryTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return &TransitionError{Entity: "ledger entry", From: string(from), Event: "to " + string(to)}
}
