package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/goliatone/go-langlink/internal/content"
	"github.com/goliatone/go-langlink/internal/logging"
	"github.com/goliatone/go-langlink/pkg/interfaces"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

type typeResponse struct {
	Name        string `json:"name"`
	Public      bool   `json:"public"`
	Description string `json:"description,omitempty"`
}

type itemContent struct {
	Raw      string `json:"raw"`
	Rendered string `json:"rendered"`
}

type deleteResponse struct {
	Deleted  bool           `json:"deleted"`
	Previous map[string]any `json:"previous"`
}

func (api *API) handleTypes(w http.ResponseWriter, _ *http.Request) {
	types := api.content.Types().List()
	out := make([]typeResponse, 0, len(types))
	for _, ct := range types {
		out = append(out, typeResponse{Name: ct.Name, Public: ct.Public, Description: ct.Description})
	}
	writeJSON(w, http.StatusOK, out)
}

func (api *API) handleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	perPage := min(max(parseIntQuery(query.Get("per_page"), defaultPerPage), 1), maxPerPage)
	page := max(parseIntQuery(query.Get("page"), 1), 1)

	items, total, err := api.content.List(r.Context(), content.ListOptions{
		Type:   r.PathValue("type"),
		Status: query.Get("status"),
		Limit:  perPage,
		Offset: (page - 1) * perPage,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		out = append(out, api.renderItem(r.Context(), item))
	}
	w.Header().Set("X-Total-Count", strconv.Itoa(total))
	writeJSON(w, http.StatusOK, out)
}

func (api *API) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	item, err := api.content.Get(r.Context(), r.PathValue("type"), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, api.renderItem(r.Context(), item))
}

func (api *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	params, err := readParams(r)
	if err != nil {
		writeError(w, err)
		return
	}
	req := content.CreateItemRequest{Type: r.PathValue("type")}
	title, err := params.stringParam("title")
	if err != nil {
		writeError(w, err)
		return
	}
	slug, err := params.stringParam("slug")
	if err != nil {
		writeError(w, err)
		return
	}
	body, err := params.body()
	if err != nil {
		writeError(w, err)
		return
	}
	status, err := params.stringParam("status")
	if err != nil {
		writeError(w, err)
		return
	}
	req.Title = stringValue(title)
	req.Slug = stringValue(slug)
	req.Status = stringValue(status)
	if body != nil {
		req.Body = *body
	}

	item, err := api.content.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	api.respondAfterWrite(w, r, item, params, true, http.StatusCreated)
}

func (api *API) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	params, err := readParams(r)
	if err != nil {
		writeError(w, err)
		return
	}
	req := content.UpdateItemRequest{Type: r.PathValue("type"), ID: id}
	if req.Title, err = params.stringParam("title"); err != nil {
		writeError(w, err)
		return
	}
	if req.Slug, err = params.stringParam("slug"); err != nil {
		writeError(w, err)
		return
	}
	if req.Body, err = params.body(); err != nil {
		writeError(w, err)
		return
	}
	if req.Status, err = params.stringParam("status"); err != nil {
		writeError(w, err)
		return
	}

	item, err := api.content.Update(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	api.respondAfterWrite(w, r, item, params, false, http.StatusOK)
}

func (api *API) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	contentType := r.PathValue("type")
	item, err := api.content.Get(r.Context(), contentType, id)
	if err != nil {
		writeError(w, err)
		return
	}
	previous := api.renderItem(r.Context(), item)
	if err := api.content.Delete(r.Context(), contentType, id); err != nil {
		writeError(w, err)
		return
	}
	logging.WithItem(api.logger, id, item.Type).Info("rest.item.deleted")
	writeJSON(w, http.StatusOK, deleteResponse{Deleted: true, Previous: previous})
}

// respondAfterWrite runs the type's insert hooks and renders the item as it
// stands afterwards. Hooks cannot alter the status code.
func (api *API) respondAfterWrite(w http.ResponseWriter, r *http.Request, item *content.Item, params requestParams, creating bool, status int) {
	ctx := r.Context()
	logger := logging.WithItem(api.logger, item.ID, item.Type)
	if creating {
		logger.Info("rest.item.created")
	} else {
		logger.Info("rest.item.updated")
	}

	hooks := api.hooksFor(item.Type)
	ref := interfaces.ItemRef{ID: interfaces.ItemID(item.ID), Type: item.Type}
	for _, hook := range hooks {
		hook(ctx, ref, params, creating)
	}
	if len(hooks) > 0 {
		logger.Debug("rest.hook.applied", "hooks", len(hooks), "creating", creating)
	}

	writeJSON(w, status, api.renderItem(ctx, item))
}

func (api *API) renderItem(ctx context.Context, item *content.Item) map[string]any {
	out := map[string]any{
		"id":       item.ID,
		"type":     item.Type,
		"slug":     item.Slug,
		"title":    item.Title,
		"status":   item.Status,
		"content":  itemContent{Raw: item.Body, Rendered: item.Rendered},
		"date":     item.CreatedAt.UTC().Format(time.RFC3339),
		"modified": item.UpdatedAt.UTC().Format(time.RFC3339),
	}
	ref := interfaces.ItemRef{ID: interfaces.ItemID(item.ID), Type: item.Type}
	for _, field := range api.fieldsFor(item.Type) {
		out[field.Name] = field.Get(ctx, ref)
	}
	return out
}

func (api *API) handleSchema(w http.ResponseWriter, r *http.Request) {
	ct, ok := api.content.Types().Get(r.PathValue("type"))
	if !ok {
		writeError(w, content.ErrContentTypeRequired)
		return
	}
	properties := map[string]any{
		"id":       map[string]any{"type": "integer", "readOnly": true},
		"type":     map[string]any{"type": "string", "readOnly": true},
		"date":     map[string]any{"type": "string", "format": "date-time", "readOnly": true},
		"modified": map[string]any{"type": "string", "format": "date-time", "readOnly": true},
	}
	if typeProps, ok := ct.Schema["properties"].(map[string]any); ok {
		for name, schema := range typeProps {
			properties[name] = schema
		}
	}
	for _, field := range api.fieldsFor(ct.Name) {
		schema := map[string]any{}
		for key, value := range field.Schema {
			schema[key] = value
		}
		properties[field.Name] = schema
	}
	w.Header().Set("Allow", "GET, POST, OPTIONS")
	writeJSON(w, http.StatusOK, map[string]any{
		"name":   ct.Name,
		"public": ct.Public,
		"schema": map[string]any{
			"$schema":    "https://json-schema.org/draft/2020-12/schema",
			"title":      ct.Name,
			"type":       "object",
			"properties": properties,
		},
	})
}
