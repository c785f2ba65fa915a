package langlink

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-langlink/pkg/interfaces"
)

const (
	// ParamLanguage is the write parameter that sets the item's language.
	ParamLanguage = "lang"
	// ParamTranslationOf is the write parameter naming the original item.
	ParamTranslationOf = "translation_of"
)

// WriteParams captures the linking inputs of a single write request.
// Has* flags record presence, independent of the value.
type WriteParams struct {
	Lang             string
	HasLang          bool
	TranslationOf    any
	HasTranslationOf bool
}

// ParamsFromRequest extracts linking parameters from a write request.
func ParamsFromRequest(req interfaces.RequestParams) WriteParams {
	params := WriteParams{}
	if req == nil {
		return params
	}
	if req.Has(ParamLanguage) {
		params.HasLang = true
		params.Lang = languageValue(req.Get(ParamLanguage))
	}
	if req.Has(ParamTranslationOf) {
		params.HasTranslationOf = true
		params.TranslationOf = req.Get(ParamTranslationOf)
	}
	return params
}

// ParamsFromValues extracts linking parameters from a plain value map, such as
// decoded front matter.
func ParamsFromValues(values map[string]any) WriteParams {
	return ParamsFromRequest(valueParams(values))
}

type valueParams map[string]any

func (v valueParams) Has(name string) bool {
	_, ok := v[name]
	return ok
}

func (v valueParams) Get(name string) any {
	return v[name]
}

// ParseTranslationOf normalizes a translation_of value to an item ID.
// Non-numeric, fractional, negative or out of range input yields zero.
func ParseTranslationOf(raw any) interfaces.ItemID {
	switch v := raw.(type) {
	case nil:
		return 0
	case interfaces.ItemID:
		return nonNegative(int64(v))
	case int:
		return nonNegative(int64(v))
	case int8:
		return nonNegative(int64(v))
	case int16:
		return nonNegative(int64(v))
	case int32:
		return nonNegative(int64(v))
	case int64:
		return nonNegative(v)
	case uint:
		return fromUint(uint64(v))
	case uint8:
		return fromUint(uint64(v))
	case uint16:
		return fromUint(uint64(v))
	case uint32:
		return fromUint(uint64(v))
	case uint64:
		return fromUint(v)
	case float32:
		return fromFloat(float64(v))
	case float64:
		return fromFloat(v)
	case json.Number:
		return parseNumeric(v.String())
	case string:
		return parseNumeric(v)
	case []byte:
		return parseNumeric(string(v))
	default:
		return 0
	}
}

func parseNumeric(value string) interfaces.ItemID {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0
	}
	if parsed, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return nonNegative(parsed)
	}
	if parsed, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return fromFloat(parsed)
	}
	return 0
}

func nonNegative(value int64) interfaces.ItemID {
	if value < 0 {
		return 0
	}
	return interfaces.ItemID(value)
}

func fromUint(value uint64) interfaces.ItemID {
	if value > math.MaxInt64 {
		return 0
	}
	return interfaces.ItemID(value)
}

func fromFloat(value float64) interfaces.ItemID {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 || value >= math.MaxInt64 {
		return 0
	}
	if value != math.Trunc(value) {
		return 0
	}
	return interfaces.ItemID(int64(value))
}

func languageValue(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
