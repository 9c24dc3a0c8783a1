package domain

import (
	"strings"
	"time"
)

// OrderStatus статус заказа бота; переходы выполняет внешняя автоматизация
type OrderStatus string

const (
	OrderSending   OrderStatus = "enviando"
	OrderExecuting OrderStatus = "en_ejecucion"
	OrderActive    OrderStatus = "orden_activa"
	OrderExpired   OrderStatus = "orden_expirada"
)

// TempOrderIDPrefix префикс ID заказа, ещё не подтверждённого хранилищем
const TempOrderIDPrefix = "temp-"

// BotOrder заказ для бота
type BotOrder struct {
	ID        string
	VenueID   string
	OrderType string
	Message   string
	Status    OrderStatus
	CreatedBy string
	CreatedAt time.Time
}

// IsTemporary заказ создан оптимистично и ещё не имеет ID хранилища
func (o BotOrder) IsTemporary() bool {
	return strings.HasPrefix(o.ID, TempOrderIDPrefix)
}

// OrderBoard заказы, разложенные для панели управления ботом
type OrderBoard struct {
	Executing []BotOrder
	Active    []BotOrder
	History   []BotOrder
}

// GroupOrders раскладывает заказы по статусу, сохраняя порядок
func GroupOrders(orders []BotOrder) OrderBoard {
	var board OrderBoard
	for _, o := range orders {
		switch o.Status {
		case OrderExecuting:
			board.Executing = append(board.Executing, o)
		case OrderActive:
			board.Active = append(board.Active, o)
		default:
			board.History = append(board.History, o)
		}
	}
	return board
}
