package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"

	"github.com/m04kA/SMC-VenueConsole/internal/infra/datastore"
	"github.com/m04kA/SMC-VenueConsole/pkg/metrics"
)

const (
	backendName = "supabase"
	restPath    = "/rest/v1"
	schema      = "public"
)

// Store реализация datastore.Store поверх Supabase (PostgREST)
// Клиенты postgrest-go не принимают context, поэтому каждый вызов выполняется в горутине,
// а отмена контекста прерывает ожидание результата
type Store struct {
	client  *supa.Client
	baseURL string
	key     string
	timeout time.Duration
	metrics *metrics.Metrics
}

// NewStore создает хранилище для проекта Supabase по URL и сервисному ключу
func NewStore(url, serviceKey string, timeout time.Duration, m *metrics.Metrics) (*Store, error) {
	url = strings.TrimRight(url, "/")
	client, err := supa.NewClient(url, serviceKey, &supa.ClientOptions{Schema: schema})
	if err != nil {
		return nil, fmt.Errorf("%w: create supabase client: %v", datastore.ErrRemote, err)
	}
	return &Store{
		client:  client,
		baseURL: url,
		key:     serviceKey,
		timeout: timeout,
		metrics: m,
	}, nil
}

// Select читает строки в dest
func (s *Store) Select(ctx context.Context, table string, q datastore.SelectQuery, dest interface{}) (err error) {
	defer s.observe("select", time.Now(), &err)

	builder := s.client.From(table).Select(datastore.ColumnList(q.Columns), "", false)
	if err := applyFilters(builder, q.Filters); err != nil {
		return fmt.Errorf("%w: Select %s: %v", datastore.ErrInvalidQuery, table, err)
	}
	for _, o := range q.Order {
		builder = builder.Order(o.Column, &postgrest.OrderOpts{Ascending: !o.Descending})
	}
	if q.Limit > 0 {
		builder = builder.Limit(q.Limit, "")
	}

	payload, err := s.execute(ctx, builder)
	if err != nil {
		return mapError("Select "+table, err)
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("%w: Select %s - decode rows: %v", datastore.ErrRemote, table, err)
	}
	return nil
}

// Insert вставляет строку
func (s *Store) Insert(ctx context.Context, table string, row interface{}, dest interface{}) (err error) {
	defer s.observe("insert", time.Now(), &err)

	builder := s.client.From(table).Insert(row, false, "", "representation", "")
	payload, err := s.execute(ctx, builder)
	if err != nil {
		return mapError("Insert "+table, err)
	}
	return decodeFirst("Insert "+table, payload, dest)
}

// Upsert вставляет строку или обновляет существующую по conflictColumns
func (s *Store) Upsert(ctx context.Context, table string, row interface{}, conflictColumns []string, dest interface{}) (err error) {
	defer s.observe("upsert", time.Now(), &err)

	if len(conflictColumns) == 0 {
		return fmt.Errorf("%w: Upsert %s - conflict columns are required", datastore.ErrInvalidQuery, table)
	}
	builder := s.client.From(table).Upsert(row, strings.Join(conflictColumns, ","), "representation", "")
	payload, err := s.execute(ctx, builder)
	if err != nil {
		return mapError("Upsert "+table, err)
	}
	return decodeFirst("Upsert "+table, payload, dest)
}

// Delete удаляет строки по фильтрам
func (s *Store) Delete(ctx context.Context, table string, filters []datastore.Filter) (err error) {
	defer s.observe("delete", time.Now(), &err)

	if len(filters) == 0 {
		return fmt.Errorf("%w: Delete %s - delete without filters", datastore.ErrInvalidQuery, table)
	}
	builder := s.client.From(table).Delete("minimal", "")
	if err := applyFilters(builder, filters); err != nil {
		return fmt.Errorf("%w: Delete %s: %v", datastore.ErrInvalidQuery, table, err)
	}
	if _, err := s.execute(ctx, builder); err != nil {
		return mapError("Delete "+table, err)
	}
	return nil
}

// Call вызывает функцию БД через /rpc
// Для каждого вызова создаётся отдельный клиент: postgrest-go запоминает ошибку Rpc в клиенте
func (s *Store) Call(ctx context.Context, function string, args map[string]interface{}, dest interface{}) (err error) {
	defer s.observe("rpc:"+function, time.Now(), &err)

	body := make(map[string]interface{}, len(args))
	for k, v := range args {
		body[k] = rpcValue(v)
	}

	raw, err := s.run(ctx, func() ([]byte, error) {
		client := postgrest.NewClient(s.baseURL+restPath, schema, map[string]string{
			"Authorization": "Bearer " + s.key,
			"apikey":        s.key,
		})
		result := client.Rpc(function, "", body)
		return []byte(result), client.ClientError
	})
	if err != nil {
		return mapError("Call "+function, err)
	}

	payload := bytes.TrimSpace(raw)
	if rpcErr := parseRPCError(payload); rpcErr != nil {
		return mapError("Call "+function, rpcErr)
	}
	if dest == nil || len(payload) == 0 || string(payload) == "null" {
		return nil
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("%w: Call %s - decode result: %v", datastore.ErrRemote, function, err)
	}
	return nil
}

func (s *Store) execute(ctx context.Context, builder *postgrest.FilterBuilder) ([]byte, error) {
	return s.run(ctx, func() ([]byte, error) {
		payload, _, err := builder.Execute()
		return payload, err
	})
}

type result struct {
	payload []byte
	err     error
}

func (s *Store) run(ctx context.Context, fn func() ([]byte, error)) ([]byte, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan result, 1)
	go func() {
		payload, err := fn()
		done <- result{payload: payload, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		return res.payload, res.err
	}
}

func (s *Store) observe(op string, started time.Time, err *error) {
	s.metrics.ObserveStoreCall(backendName, op, started, *err)
}

// applyFilters переносит фильтры в параметры PostgREST
// postgrest-go хранит фильтры по имени колонки, поэтому несколько условий на одну колонку
// (например, диапазон дат) собираются в общий and=(...)
func applyFilters(builder *postgrest.FilterBuilder, filters []datastore.Filter) error {
	perColumn := make(map[string]int, len(filters))
	for _, f := range filters {
		perColumn[f.Column]++
	}

	var grouped []string
	for _, f := range filters {
		if perColumn[f.Column] > 1 {
			expr, err := filterExpression(f)
			if err != nil {
				return err
			}
			grouped = append(grouped, f.Column+"."+expr)
			continue
		}

		switch f.Operator {
		case datastore.OpEq:
			if f.Value == nil {
				builder.Is(f.Column, "null")
			} else {
				builder.Eq(f.Column, datastore.ValueString(f.Value))
			}
		case datastore.OpGte:
			builder.Gte(f.Column, datastore.ValueString(f.Value))
		case datastore.OpLte:
			builder.Lte(f.Column, datastore.ValueString(f.Value))
		case datastore.OpIn:
			values, ok := f.Value.([]string)
			if !ok {
				return fmt.Errorf("in filter on %s expects []string", f.Column)
			}
			builder.In(f.Column, values)
		default:
			return fmt.Errorf("unsupported operator %q", f.Operator)
		}
	}

	if len(grouped) > 0 {
		builder.And(strings.Join(grouped, ","), "")
	}
	return nil
}

func filterExpression(f datastore.Filter) (string, error) {
	switch f.Operator {
	case datastore.OpEq:
		if f.Value == nil {
			return "is.null", nil
		}
		return "eq." + datastore.ValueString(f.Value), nil
	case datastore.OpGte:
		return "gte." + datastore.ValueString(f.Value), nil
	case datastore.OpLte:
		return "lte." + datastore.ValueString(f.Value), nil
	case datastore.OpIn:
		values, ok := f.Value.([]string)
		if !ok {
			return "", fmt.Errorf("in filter on %s expects []string", f.Column)
		}
		return "in.(" + strings.Join(values, ",") + ")", nil
	default:
		return "", fmt.Errorf("unsupported operator %q", f.Operator)
	}
}

// rpcValue приводит доменные значения (даты, время) к строкам JSON
func rpcValue(v interface{}) interface{} {
	switch val := v.(type) {
	case nil, string, bool, int, int32, int64, float64:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return val
	}
}

// decodeFirst PostgREST возвращает вставленные строки массивом; dest получает первую
func decodeFirst(op string, payload []byte, dest interface{}) error {
	if dest == nil {
		return nil
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(payload, &rows); err != nil {
		return fmt.Errorf("%w: %s - decode result: %v", datastore.ErrRemote, op, err)
	}
	if len(rows) == 0 {
		return nil
	}
	if err := json.Unmarshal(rows[0], dest); err != nil {
		return fmt.Errorf("%w: %s - decode result: %v", datastore.ErrRemote, op, err)
	}
	return nil
}

// rpcError тело ошибки PostgREST; Rpc отдаёт его без HTTP статуса
type rpcError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Hint    string `json:"hint"`
	Details string `json:"details"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("(%s) %s", e.Code, e.Message)
}

func parseRPCError(payload []byte) error {
	if len(payload) == 0 || payload[0] != '{' {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil
	}
	_, hasCode := fields["code"]
	_, hasMessage := fields["message"]
	if !hasCode || !hasMessage {
		return nil
	}
	var e rpcError
	if err := json.Unmarshal(payload, &e); err != nil {
		return nil
	}
	return &e
}

func mapError(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %w", datastore.ErrRemote, op, err)
	}
	if strings.HasPrefix(err.Error(), "("+datastore.UniqueViolationCode+")") {
		return fmt.Errorf("%w: %s: %v", datastore.ErrConflict, op, err)
	}
	return fmt.Errorf("%w: %s: %v", datastore.ErrRemote, op, err)
}
