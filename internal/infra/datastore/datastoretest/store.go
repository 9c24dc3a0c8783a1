// Package datastoretest фейковое хранилище для тестов репозиториев
package datastoretest

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/m04kA/SMC-VenueConsole/internal/infra/datastore"
)

// SelectCall записанный Select
type SelectCall struct {
	Table string
	Query datastore.SelectQuery
}

// WriteCall записанный Insert или Upsert
type WriteCall struct {
	Table    string
	Row      map[string]interface{}
	Conflict []string
}

// DeleteCall записанный Delete
type DeleteCall struct {
	Table   string
	Filters []datastore.Filter
}

// RPCCall записанный Call
type RPCCall struct {
	Function string
	Args     map[string]interface{}
}

// Store записывает обращения и отдаёт заранее заданные ответы через JSON,
// так же как это делают настоящие реализации
type Store struct {
	mu sync.Mutex

	// Rows ответ Select по таблице; по умолчанию пустой список
	Rows map[string]interface{}
	// Returning ответ Insert/Upsert по таблице; по умолчанию записанная строка
	Returning map[string]interface{}
	// Results ответ Call по имени функции; по умолчанию null
	Results map[string]interface{}
	// Errors ошибка по таблице или имени функции
	Errors map[string]error

	Selects []SelectCall
	Inserts []WriteCall
	Upserts []WriteCall
	Deletes []DeleteCall
	Calls   []RPCCall
}

// New создает пустой фейк
func New() *Store {
	return &Store{
		Rows:      map[string]interface{}{},
		Returning: map[string]interface{}{},
		Results:   map[string]interface{}{},
		Errors:    map[string]error{},
	}
}

// Select отдаёт Rows[table]
func (s *Store) Select(_ context.Context, table string, query datastore.SelectQuery, dest interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Selects = append(s.Selects, SelectCall{Table: table, Query: query})
	if err := s.Errors[table]; err != nil {
		return err
	}
	rows, ok := s.Rows[table]
	if !ok {
		rows = []interface{}{}
	}
	return roundTrip(rows, dest)
}

// Insert записывает строку
func (s *Store) Insert(_ context.Context, table string, row interface{}, dest interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields, err := toMap(row)
	if err != nil {
		return err
	}
	s.Inserts = append(s.Inserts, WriteCall{Table: table, Row: fields})
	if err := s.Errors[table]; err != nil {
		return err
	}
	return s.returning(table, fields, dest)
}

// Upsert записывает строку и ключ конфликта
func (s *Store) Upsert(_ context.Context, table string, row interface{}, conflictColumns []string, dest interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields, err := toMap(row)
	if err != nil {
		return err
	}
	s.Upserts = append(s.Upserts, WriteCall{Table: table, Row: fields, Conflict: conflictColumns})
	if err := s.Errors[table]; err != nil {
		return err
	}
	return s.returning(table, fields, dest)
}

// Delete записывает фильтры
func (s *Store) Delete(_ context.Context, table string, filters []datastore.Filter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Deletes = append(s.Deletes, DeleteCall{Table: table, Filters: filters})
	return s.Errors[table]
}

// Call отдаёт Results[function]
func (s *Store) Call(_ context.Context, function string, args map[string]interface{}, dest interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Calls = append(s.Calls, RPCCall{Function: function, Args: args})
	if err := s.Errors[function]; err != nil {
		return err
	}
	result, ok := s.Results[function]
	if !ok || dest == nil {
		return nil
	}
	return roundTrip(result, dest)
}

func (s *Store) returning(table string, fields map[string]interface{}, dest interface{}) error {
	if dest == nil {
		return nil
	}
	if ret, ok := s.Returning[table]; ok {
		if ret == nil {
			return nil
		}
		return roundTrip(ret, dest)
	}
	return roundTrip(fields, dest)
}

func toMap(row interface{}) (map[string]interface{}, error) {
	var fields map[string]interface{}
	if err := roundTrip(row, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func roundTrip(src, dest interface{}) error {
	payload, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, dest)
}
