package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-VenueConsole/internal/infra/datastore"
	"github.com/m04kA/SMC-VenueConsole/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueConsole/pkg/metrics"
	"github.com/m04kA/SMC-VenueConsole/pkg/psqlbuilder"
)

const backendName = "postgres"

// Store реализация datastore.Store поверх прямого подключения к Postgres
// Строки читаются и пишутся через JSON (json_agg / json_populate_record), как это делает PostgREST
type Store struct {
	db      dbmetrics.DBExecutor
	metrics *metrics.Metrics
}

// NewStore создает хранилище; m может быть nil
func NewStore(db dbmetrics.DBExecutor, m *metrics.Metrics) *Store {
	return &Store{db: db, metrics: m}
}

// Select читает строки в dest
func (s *Store) Select(ctx context.Context, table string, q datastore.SelectQuery, dest interface{}) (err error) {
	defer s.observe("select", time.Now(), &err)

	query, args, err := buildSelect(table, q)
	if err != nil {
		return fmt.Errorf("%w: Select %s - build query: %v", datastore.ErrInvalidQuery, table, err)
	}

	var payload []byte
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
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

	query, args, err := buildInsert(table, row, nil)
	if err != nil {
		return fmt.Errorf("%w: Insert %s - build query: %v", datastore.ErrInvalidQuery, table, err)
	}
	return s.queryJSON(ctx, "Insert "+table, query, args, dest)
}

// Upsert вставляет строку или обновляет существующую по conflictColumns
func (s *Store) Upsert(ctx context.Context, table string, row interface{}, conflictColumns []string, dest interface{}) (err error) {
	defer s.observe("upsert", time.Now(), &err)

	if len(conflictColumns) == 0 {
		return fmt.Errorf("%w: Upsert %s - conflict columns are required", datastore.ErrInvalidQuery, table)
	}
	query, args, err := buildInsert(table, row, conflictColumns)
	if err != nil {
		return fmt.Errorf("%w: Upsert %s - build query: %v", datastore.ErrInvalidQuery, table, err)
	}
	return s.queryJSON(ctx, "Upsert "+table, query, args, dest)
}

// Delete удаляет строки по фильтрам
func (s *Store) Delete(ctx context.Context, table string, filters []datastore.Filter) (err error) {
	defer s.observe("delete", time.Now(), &err)

	query, args, err := buildDelete(table, filters)
	if err != nil {
		return fmt.Errorf("%w: Delete %s - build query: %v", datastore.ErrInvalidQuery, table, err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return mapError("Delete "+table, err)
	}
	return nil
}

// Call вызывает функцию БД с именованными аргументами
func (s *Store) Call(ctx context.Context, function string, args map[string]interface{}, dest interface{}) (err error) {
	defer s.observe("rpc:"+function, time.Now(), &err)

	query, values := buildCall(function, args)
	return s.queryJSON(ctx, "Call "+function, query, values, dest)
}

func (s *Store) queryJSON(ctx context.Context, op, query string, args []interface{}, dest interface{}) error {
	var payload []byte
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
		return mapError(op, err)
	}
	if dest == nil || len(payload) == 0 || string(payload) == "null" {
		return nil
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("%w: %s - decode result: %v", datastore.ErrRemote, op, err)
	}
	return nil
}

func (s *Store) observe(op string, started time.Time, err *error) {
	s.metrics.ObserveStoreCall(backendName, op, started, *err)
}

func buildSelect(table string, q datastore.SelectQuery) (string, []interface{}, error) {
	inner := squirrel.Select(selectColumns(q.Columns)...).From(table)

	for _, f := range q.Filters {
		cond, err := condition(f)
		if err != nil {
			return "", nil, err
		}
		inner = inner.Where(cond)
	}
	for _, o := range q.Order {
		dir := "ASC"
		if o.Descending {
			dir = "DESC"
		}
		inner = inner.OrderBy(pq.QuoteIdentifier(o.Column) + " " + dir)
	}
	if q.Limit > 0 {
		inner = inner.Limit(uint64(q.Limit))
	}

	return psqlbuilder.Select("COALESCE(json_agg(t), '[]'::json)").
		FromSelect(inner, "t").
		ToSql()
}

func buildDelete(table string, filters []datastore.Filter) (string, []interface{}, error) {
	if len(filters) == 0 {
		return "", nil, errors.New("delete without filters")
	}
	builder := psqlbuilder.Delete(table)
	for _, f := range filters {
		cond, err := condition(f)
		if err != nil {
			return "", nil, err
		}
		builder = builder.Where(cond)
	}
	return builder.ToSql()
}

// buildInsert строит INSERT ... SELECT из json_populate_record, чтобы колонки с массивами и jsonb
// приводились к типам таблицы на стороне БД; отсутствующие в строке колонки получают DEFAULT
func buildInsert(table string, row interface{}, conflictColumns []string) (string, []interface{}, error) {
	payload, err := json.Marshal(row)
	if err != nil {
		return "", nil, fmt.Errorf("encode row: %w", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return "", nil, fmt.Errorf("row must be a JSON object: %w", err)
	}
	if len(fields) == 0 {
		return "", nil, errors.New("row has no columns")
	}

	columns := make([]string, 0, len(fields))
	for name := range fields {
		columns = append(columns, name)
	}
	sort.Strings(columns)

	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = pq.QuoteIdentifier(c)
	}
	columnList := strings.Join(quoted, ", ")
	tableName := pq.QuoteIdentifier(table)

	var sb strings.Builder
	fmt.Fprintf(&sb, "INSERT INTO %s AS t (%s) SELECT %s FROM json_populate_record(NULL::%s, $1::json)",
		tableName, columnList, columnList, tableName)

	if len(conflictColumns) > 0 {
		conflict := make([]string, len(conflictColumns))
		isConflict := make(map[string]bool, len(conflictColumns))
		for i, c := range conflictColumns {
			conflict[i] = pq.QuoteIdentifier(c)
			isConflict[c] = true
		}

		var updates []string
		for _, c := range columns {
			if isConflict[c] {
				continue
			}
			q := pq.QuoteIdentifier(c)
			updates = append(updates, q+" = EXCLUDED."+q)
		}

		if len(updates) == 0 {
			fmt.Fprintf(&sb, " ON CONFLICT (%s) DO NOTHING", strings.Join(conflict, ", "))
		} else {
			fmt.Fprintf(&sb, " ON CONFLICT (%s) DO UPDATE SET %s",
				strings.Join(conflict, ", "), strings.Join(updates, ", "))
		}
	}
	sb.WriteString(" RETURNING row_to_json(t.*)")

	return sb.String(), []interface{}{string(payload)}, nil
}

// buildCall строит SELECT to_json(fn(p_a => $1, ...)); аргументы упорядочены по имени
func buildCall(function string, args map[string]interface{}) (string, []interface{}) {
	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}
	sort.Strings(names)

	params := make([]string, len(names))
	values := make([]interface{}, len(names))
	for i, name := range names {
		params[i] = fmt.Sprintf("%s => $%d", pq.QuoteIdentifier(name), i+1)
		values[i] = argValue(args[name])
	}

	query := fmt.Sprintf("SELECT to_json(%s(%s))", pq.QuoteIdentifier(function), strings.Join(params, ", "))
	return query, values
}

func selectColumns(columns []string) []string {
	if len(columns) == 0 {
		return []string{"*"}
	}
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = pq.QuoteIdentifier(c)
	}
	return quoted
}

func condition(f datastore.Filter) (squirrel.Sqlizer, error) {
	column := pq.QuoteIdentifier(f.Column)
	switch f.Operator {
	case datastore.OpEq:
		return squirrel.Eq{column: argValue(f.Value)}, nil
	case datastore.OpGte:
		return squirrel.GtOrEq{column: argValue(f.Value)}, nil
	case datastore.OpLte:
		return squirrel.LtOrEq{column: argValue(f.Value)}, nil
	case datastore.OpIn:
		values, ok := f.Value.([]string)
		if !ok {
			return nil, fmt.Errorf("in filter on %s expects []string", f.Column)
		}
		if len(values) == 0 {
			return squirrel.Expr("FALSE"), nil
		}
		return squirrel.Eq{column: values}, nil
	default:
		return nil, fmt.Errorf("unsupported operator %q", f.Operator)
	}
}

// argValue приводит доменные значения (даты, время) к тексту, понятному lib/pq
func argValue(v interface{}) interface{} {
	switch val := v.(type) {
	case nil, string, bool, int, int32, int64, float64:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return val
	}
}

func mapError(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", datastore.ErrNotFound, op)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %w", datastore.ErrRemote, op, err)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == datastore.UniqueViolationCode {
		return fmt.Errorf("%w: %s: %s", datastore.ErrConflict, op, pqErr.Message)
	}
	return fmt.Errorf("%w: %s: %v", datastore.ErrRemote, op, err)
}
