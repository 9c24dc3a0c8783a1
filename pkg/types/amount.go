package types

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount денежная сумма в целых песо
// Хранилище может вернуть numeric как 15000, 15000.00 или "15000"; null читается как 0
type Amount int64

// Int64 значение суммы
func (a Amount) Int64() int64 {
	return int64(a)
}

// UnmarshalJSON принимает число, строку с числом или null
func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == "" {
		*a = 0
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid amount %s: %w", raw, err)
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*a = 0
			return nil
		}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	*a = Amount(math.Round(f))
	return nil
}
