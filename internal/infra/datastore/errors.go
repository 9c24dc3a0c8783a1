package datastore

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound возвращается, когда ожидаемая строка не найдена
	ErrNotFound = errors.New("datastore: not found")

	// ErrConflict возвращается при нарушении уникального ключа
	ErrConflict = errors.New("datastore: unique constraint violation")

	// ErrRemote возвращается при любой другой ошибке хранилища или сети
	ErrRemote = errors.New("datastore: remote error")

	// ErrInvalidQuery возвращается при некорректном запросе (например, delete без фильтров)
	ErrInvalidQuery = errors.New("datastore: invalid query")
)

// UniqueViolationCode SQLSTATE нарушения уникальности
const UniqueViolationCode = "23505"

// ValueString текстовое представление значения фильтра для REST-запросов
func ValueString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(val)
	}
}

// ColumnList объединяет колонки для select; пусто означает "*"
func ColumnList(columns []string) string {
	if len(columns) == 0 {
		return "*"
	}
	return strings.Join(columns, ",")
}
