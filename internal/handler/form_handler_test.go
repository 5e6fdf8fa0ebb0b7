package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"simusmart/internal/editor"
	"simusmart/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormHandler_Submit(t *testing.T) {
	tests := []struct {
		name           string
		kind           string
		body           string
		expectedStatus int
		expectCreated  bool
	}{
		{name: "New product", kind: "product", body: `{"name":"PodMini","price":4500,"category":"Audio","stock":9}`, expectedStatus: http.StatusCreated, expectCreated: true},
		{name: "Existing category", kind: "category", body: `{"id":"audio","name":"Audio","imageUrl":"https://img/audio"}`, expectedStatus: http.StatusOK},
		{name: "New social link", kind: "social-link", body: `{"name":"TikTok","url":"https://tiktok.com","icon":"TikTok"}`, expectedStatus: http.StatusCreated, expectCreated: true},
		{name: "Existing quick link", kind: "quick-link", body: `{"id":"ql1","text":"About","url":"/about"}`, expectedStatus: http.StatusOK},
		{name: "Missing payment method", kind: "payment-method", body: `{"id":"pay9","name":"X"}`, expectedStatus: http.StatusNotFound},
		{name: "Unknown kind", kind: "order", body: `{}`, expectedStatus: http.StatusBadRequest},
		{name: "Field from another kind", kind: "category", body: `{"name":"X","price":1}`, expectedStatus: http.StatusBadRequest},
		{name: "Invalid product", kind: "product", body: `{"name":"X","price":-1,"category":"Audio"}`, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stack := newTestStack(t)
			handler := NewFormHandler(stack.forms, zerolog.Nop())

			w := serve(handler.Submit, http.MethodPost, "/api/admin/forms/"+tt.kind, tt.body, "kind", tt.kind)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if w.Code >= http.StatusBadRequest {
				return
			}

			var res struct {
				Kind    editor.Kind     `json:"kind"`
				Created bool            `json:"created"`
				Item    json.RawMessage `json:"item"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.Equal(t, editor.Kind(tt.kind), res.Kind)
			assert.Equal(t, tt.expectCreated, res.Created)

			var item struct {
				ID string `json:"id"`
			}
			require.NoError(t, json.Unmarshal(res.Item, &item))
			assert.NotEmpty(t, item.ID)
		})
	}
}

func TestFormHandler_CategoryAppearsInCatalog(t *testing.T) {
	stack := newTestStack(t)
	handler := NewFormHandler(stack.forms, zerolog.Nop())

	w := serve(handler.Submit, http.MethodPost, "/api/admin/forms/category", `{"name":"Drones"}`, "kind", "category")
	require.Equal(t, http.StatusCreated, w.Code)

	categories, err := stack.catalog.ListCategories(t.Context())
	require.NoError(t, err)
	require.Len(t, categories, 7)
	assert.Equal(t, model.Category{ID: categories[6].ID, Name: "Drones", ImageURL: "https://picsum.photos/seed/newcat/400/400"}, categories[6])
}
