package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goliatone/go-langlink/pkg/interfaces"
)

var errInvalidBody = errors.New("rest: request body must be a JSON object")

// requestParams merges the JSON body over the query string; body keys win.
type requestParams map[string]any

var _ interfaces.RequestParams = requestParams(nil)

func (p requestParams) Has(name string) bool {
	_, ok := p[name]
	return ok
}

func (p requestParams) Get(name string) any {
	return p[name]
}

func readParams(r *http.Request) (requestParams, error) {
	params := requestParams{}
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	body := map[string]any{}
	if err := decodeJSON(r, &body); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	for key, value := range body {
		params[key] = value
	}
	return params, nil
}

// stringParam reads a string field. The content field also accepts an object
// carrying a raw key.
func (p requestParams) stringParam(name string) (*string, error) {
	value, ok := p[name]
	if !ok {
		return nil, nil
	}
	switch typed := value.(type) {
	case nil:
		empty := ""
		return &empty, nil
	case string:
		return &typed, nil
	case json.Number:
		out := typed.String()
		return &out, nil
	case bool:
		out := fmt.Sprint(typed)
		return &out, nil
	case map[string]any:
		if raw, ok := typed["raw"].(string); ok {
			return &raw, nil
		}
	}
	return nil, fmt.Errorf("%w: field %s must be a string", errInvalidBody, name)
}

// body accepts "content" and falls back to "body".
func (p requestParams) body() (*string, error) {
	if p.Has("content") {
		return p.stringParam("content")
	}
	return p.stringParam("body")
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}
