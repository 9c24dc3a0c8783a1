package datastore

import "context"

// Store внешнее хранилище площадки: чтение по фильтрам, запись, удаление и удалённые процедуры
// Строки передаются как структуры с json-тегами колонок; обе реализации декодируют JSON
type Store interface {
	// Select читает строки таблицы или представления в dest (указатель на слайс)
	Select(ctx context.Context, table string, query SelectQuery, dest interface{}) error
	// Insert вставляет строку; dest (может быть nil) получает вставленную строку
	Insert(ctx context.Context, table string, row interface{}, dest interface{}) error
	// Upsert вставляет или обновляет строку по уникальному ключу conflictColumns
	Upsert(ctx context.Context, table string, row interface{}, conflictColumns []string, dest interface{}) error
	// Delete удаляет строки по фильтрам; без фильтров запрещено
	Delete(ctx context.Context, table string, filters []Filter) error
	// Call вызывает удалённую процедуру с именованными аргументами; dest (может быть nil) получает результат
	Call(ctx context.Context, function string, args map[string]interface{}, dest interface{}) error
}

// Operator оператор фильтра
type Operator string

const (
	OpEq  Operator = "eq"
	OpGte Operator = "gte"
	OpLte Operator = "lte"
	OpIn  Operator = "in"
)

// Filter условие по колонке
type Filter struct {
	Column   string
	Operator Operator
	Value    interface{}
}

// Eq column = value
func Eq(column string, value interface{}) Filter {
	return Filter{Column: column, Operator: OpEq, Value: value}
}

// Gte column >= value
func Gte(column string, value interface{}) Filter {
	return Filter{Column: column, Operator: OpGte, Value: value}
}

// Lte column <= value
func Lte(column string, value interface{}) Filter {
	return Filter{Column: column, Operator: OpLte, Value: value}
}

// In column IN (values...)
func In(column string, values []string) Filter {
	return Filter{Column: column, Operator: OpIn, Value: values}
}

// Order сортировка по колонке
type Order struct {
	Column     string
	Descending bool
}

// Asc сортировка по возрастанию
func Asc(column string) Order { return Order{Column: column} }

// Desc сортировка по убыванию
func Desc(column string) Order { return Order{Column: column, Descending: true} }

// SelectQuery параметры чтения
type SelectQuery struct {
	Columns []string
	Filters []Filter
	Order   []Order
	Limit   int
}

// Query собирает SelectQuery
func Query(columns ...string) SelectQuery {
	return SelectQuery{Columns: columns}
}

// Where добавляет фильтры
func (q SelectQuery) Where(filters ...Filter) SelectQuery {
	q.Filters = append(append([]Filter{}, q.Filters...), filters...)
	return q
}

// OrderBy добавляет сортировку
func (q SelectQuery) OrderBy(orders ...Order) SelectQuery {
	q.Order = append(append([]Order{}, q.Order...), orders...)
	return q
}

// WithLimit ограничивает число строк
func (q SelectQuery) WithLimit(n int) SelectQuery {
	q.Limit = n
	return q
}
