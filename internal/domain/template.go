package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Importance уровень важности шаблона заказа
type Importance string

const (
	ImportanceNormal   Importance = "normal"
	ImportanceHigh     Importance = "high"
	ImportanceCritical Importance = "critical"
)

// ParseImportance неизвестное или пустое значение считается normal
func ParseImportance(s string) Importance {
	switch Importance(strings.ToLower(strings.TrimSpace(s))) {
	case ImportanceHigh:
		return ImportanceHigh
	case ImportanceCritical:
		return ImportanceCritical
	default:
		return ImportanceNormal
	}
}

// Category категория шаблона, определяет набор полей формы
type Category string

const (
	CategoryReservations   Category = "Reservas"
	CategoryEmergencies    Category = "Emergencias"
	CategoryHours          Category = "Horarios y Funcionamiento"
	CategoryCommunications Category = "Comunicaciones"
)

// VariableType тип переменной шаблона
type VariableType string

const (
	VarText     VariableType = "text"
	VarTextarea VariableType = "textarea"
	VarSelect   VariableType = "select"
	VarTime     VariableType = "time"
	VarDate     VariableType = "date"
	VarCourt    VariableType = "cancha"
	VarCourtID  VariableType = "cancha_id"
	VarConfirm  VariableType = "confirm"
)

// Normalize сводит синонимы к одному типу
func (t VariableType) Normalize() VariableType {
	if t == VarCourtID {
		return VarCourt
	}
	return t
}

// InMessage попадает ли значение переменной в текст сообщения
func (t VariableType) InMessage() bool {
	switch t.Normalize() {
	case VarText, VarTextarea, VarSelect, VarTime, VarDate, VarCourt:
		return true
	default:
		return false
	}
}

// Variable описание переменной шаблона
type Variable struct {
	Key      string       `json:"key"`
	Type     VariableType `json:"type"`
	Label    string       `json:"label,omitempty"`
	Options  []string     `json:"options,omitempty"`
	Optional bool         `json:"optional,omitempty"`
}

// BotOrderTemplate шаблон заказа для бота
type BotOrderTemplate struct {
	ID              string
	Category        Category
	Title           string
	OrderType       string
	MessageTemplate string
	Variables       []Variable
	Importance      Importance
	CategoryOrder   int
	ItemOrder       int
	Active          bool
}

// Value значение поля формы
// Приходит строкой (text, select, court) или объектом из частей (date, time)
type Value struct {
	Text   string `json:"-"`
	Day    string `json:"day,omitempty"`
	Month  string `json:"month,omitempty"`
	Year   string `json:"year,omitempty"`
	Hour   string `json:"hour,omitempty"`
	Minute string `json:"minute,omitempty"`
}

// TextValue значение-строка
func TextValue(s string) Value { return Value{Text: s} }

// DateValue значение даты из частей
func DateValue(day, month, year string) Value { return Value{Day: day, Month: month, Year: year} }

// TimeValue значение времени из частей
func TimeValue(hour, minute string) Value { return Value{Hour: hour, Minute: minute} }

// UnmarshalJSON принимает строку, число, bool или объект с частями
func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*v = Value{}
		return nil
	}
	if strings.HasPrefix(trimmed, "{") {
		var parts struct {
			Day    json.RawMessage `json:"day"`
			Month  json.RawMessage `json:"month"`
			Year   json.RawMessage `json:"year"`
			Hour   json.RawMessage `json:"hour"`
			Minute json.RawMessage `json:"minute"`
		}
		if err := json.Unmarshal(data, &parts); err != nil {
			return err
		}
		*v = Value{
			Day:    scalar(parts.Day),
			Month:  scalar(parts.Month),
			Year:   scalar(parts.Year),
			Hour:   scalar(parts.Hour),
			Minute: scalar(parts.Minute),
		}
		return nil
	}
	*v = Value{Text: scalar(data)}
	return nil
}

// MarshalJSON строка для текстовых значений, объект для составных
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Day == "" && v.Month == "" && v.Year == "" && v.Hour == "" && v.Minute == "" {
		return json.Marshal(v.Text)
	}
	type parts Value
	return json.Marshal(parts(v))
}

func scalar(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "null" {
		return ""
	}
	return trimmed
}

// ResolveValues превращает значения формы в строки для подстановки
// date -> DD/MM/YYYY, time -> HH:MM, cancha -> название корта; неполные значения дают ""
// Управляющие и неизвестные типы в результат не попадают
func ResolveValues(tpl BotOrderTemplate, values map[string]Value, courts []Court) map[string]string {
	resolved := make(map[string]string, len(tpl.Variables))
	for _, variable := range tpl.Variables {
		if !variable.Type.InMessage() {
			continue
		}
		value, ok := values[variable.Key]
		if !ok {
			resolved[variable.Key] = ""
			continue
		}

		switch variable.Type.Normalize() {
		case VarDate:
			resolved[variable.Key] = formatDateParts(value)
		case VarTime:
			resolved[variable.Key] = formatTimeParts(value)
		case VarCourt:
			resolved[variable.Key] = CourtName(courts, strings.TrimSpace(value.Text))
		default:
			resolved[variable.Key] = value.Text
		}
	}
	return resolved
}

func formatDateParts(v Value) string {
	day, errD := strconv.Atoi(strings.TrimSpace(v.Day))
	month, errM := strconv.Atoi(strings.TrimSpace(v.Month))
	year, errY := strconv.Atoi(strings.TrimSpace(v.Year))
	if errD != nil || errM != nil || errY != nil || day <= 0 || month <= 0 || year <= 0 {
		return ""
	}
	return fmt.Sprintf("%02d/%02d/%04d", day, month, year)
}

func formatTimeParts(v Value) string {
	hour, errH := strconv.Atoi(strings.TrimSpace(v.Hour))
	minute, errM := strconv.Atoi(strings.TrimSpace(v.Minute))
	if errH != nil || errM != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

var placeholderPattern = regexp.MustCompile(`\{\{\s*([^{}]*?)\s*\}\}`)

// Render подставляет значения в {{key}} буквальной заменой всех вхождений
// Объявленные управляющие переменные заменяются пустой строкой.
// Токен без объявленной переменной даёт ErrUnresolvedPlaceholder
func Render(tpl BotOrderTemplate, resolved map[string]string) (string, error) {
	declared := make(map[string]bool, len(tpl.Variables))
	for _, variable := range tpl.Variables {
		declared[variable.Key] = true
	}

	var unresolved []string
	message := placeholderPattern.ReplaceAllStringFunc(tpl.MessageTemplate, func(token string) string {
		key := placeholderPattern.FindStringSubmatch(token)[1]
		if value, ok := resolved[key]; ok {
			return value
		}
		if declared[key] {
			return ""
		}
		unresolved = append(unresolved, key)
		return token
	})

	if len(unresolved) > 0 {
		return "", fmt.Errorf("%w: %s", ErrUnresolvedPlaceholder, strings.Join(unresolved, ", "))
	}
	return message, nil
}

// MissingRequired возвращает обязательные переменные с пустым значением
func MissingRequired(tpl BotOrderTemplate, resolved map[string]string) []string {
	var missing []string
	for _, variable := range tpl.Variables {
		if variable.Optional || !variable.Type.InMessage() {
			continue
		}
		if strings.TrimSpace(resolved[variable.Key]) == "" {
			missing = append(missing, variable.Key)
		}
	}
	return missing
}

// FormField поле формы заказа
type FormField struct {
	Key      string
	Type     VariableType
	Label    string
	Options  []string
	Required bool
}

// FormConfig конфигурация формы для категории шаблона
type FormConfig struct {
	Category    Category
	Fields      []FormField
	NeedsCourts bool
	Warning     string
}

// FormConfigFor выбирает форму по категории шаблона
func FormConfigFor(tpl BotOrderTemplate) FormConfig {
	var cfg FormConfig
	switch tpl.Category {
	case CategoryReservations:
		cfg = reservationsForm(tpl)
	case CategoryEmergencies:
		cfg = emergenciesForm(tpl)
	case CategoryHours:
		cfg = hoursForm(tpl)
	case CategoryCommunications:
		cfg = communicationsForm(tpl)
	default:
		cfg = FormConfig{}
	}
	for i := range cfg.Fields {
		if cfg.Fields[i].Label == "" {
			cfg.Fields[i].Label = cfg.Fields[i].Key
		}
	}
	cfg.Category = tpl.Category
	cfg.Warning = importanceWarning(tpl.Importance)
	return cfg
}

func reservationsForm(tpl BotOrderTemplate) FormConfig {
	fields := fieldsOfTypes(tpl, VarDate, VarTime, VarCourt)
	for i := range fields {
		fields[i].Required = true
	}
	return FormConfig{Fields: fields, NeedsCourts: true}
}

func emergenciesForm(tpl BotOrderTemplate) FormConfig {
	fields := fieldsOfTypes(tpl, VarCourt, VarSelect, VarText, VarTextarea)
	for i := range fields {
		if fields[i].Type == VarCourt && fields[i].Label == "" {
			fields[i].Label = "Cancha"
		}
	}
	return FormConfig{Fields: fields, NeedsCourts: true}
}

func hoursForm(tpl BotOrderTemplate) FormConfig {
	fields := fieldsOfTypes(tpl, VarTime)
	for i := range fields {
		fields[i].Required = true
		switch fields[i].Key {
		case "hora_apertura":
			fields[i].Label = "Hora de apertura"
		case "hora_cierre":
			fields[i].Label = "Hora de cierre"
		}
	}
	return FormConfig{Fields: fields}
}

func communicationsForm(tpl BotOrderTemplate) FormConfig {
	return FormConfig{Fields: fieldsOfTypes(tpl, VarSelect, VarTime, VarDate)}
}

func fieldsOfTypes(tpl BotOrderTemplate, types ...VariableType) []FormField {
	allowed := make(map[VariableType]bool, len(types))
	for _, t := range types {
		allowed[t] = true
	}
	var fields []FormField
	for _, v := range tpl.Variables {
		t := v.Type.Normalize()
		if !allowed[t] {
			continue
		}
		fields = append(fields, FormField{
			Key:      v.Key,
			Type:     t,
			Label:    v.Label,
			Options:  v.Options,
			Required: !v.Optional,
		})
	}
	return fields
}

func importanceWarning(importance Importance) string {
	switch importance {
	case ImportanceCritical:
		return "ACCIÓN CRÍTICA: esta acción enviará mensajes irreversibles a clientes. Ejecuta esta orden solo si estás completamente seguro."
	case ImportanceHigh:
		return "IMPORTANTE: esta acción podrá reagendar una o más reservas y notificar a los clientes afectados."
	default:
		return ""
	}
}
