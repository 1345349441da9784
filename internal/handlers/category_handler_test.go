package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"pocketledger/internal/models"
	"pocketledger/internal/services"
)

// --- mock category registry ---

type mockRegistry struct {
	normalizeFn           func(raw string) string
	registerCategoryFn    func(name string) error
	registerSubcategoryFn func(category, sub string) (string, error)
	deleteSubcategoryFn   func(category, sub string) error
	availableFn           func() []string
	stylesFn              func() map[string]models.CategoryStyle
	styleForFn            func(name string) models.CategoryStyle
	hierarchyFn           func() map[string][]string
}

func (m *mockRegistry) Normalize(raw string) string {
	if m.normalizeFn != nil {
		return m.normalizeFn(raw)
	}
	return raw
}

func (m *mockRegistry) RegisterCategory(name string) error {
	if m.registerCategoryFn != nil {
		return m.registerCategoryFn(name)
	}
	return nil
}

func (m *mockRegistry) RegisterSubcategory(category, sub string) (string, error) {
	if m.registerSubcategoryFn != nil {
		return m.registerSubcategoryFn(category, sub)
	}
	return sub, nil
}

func (m *mockRegistry) DeleteSubcategory(category, sub string) error {
	if m.deleteSubcategoryFn != nil {
		return m.deleteSubcategoryFn(category, sub)
	}
	return nil
}

func (m *mockRegistry) AvailableCategories() []string {
	if m.availableFn != nil {
		return m.availableFn()
	}
	return nil
}

func (m *mockRegistry) Styles() map[string]models.CategoryStyle {
	if m.stylesFn != nil {
		return m.stylesFn()
	}
	return nil
}

func (m *mockRegistry) StyleFor(name string) models.CategoryStyle {
	if m.styleForFn != nil {
		return m.styleForFn(name)
	}
	return models.NeutralStyle
}

func (m *mockRegistry) Hierarchy() map[string][]string {
	if m.hierarchyFn != nil {
		return m.hierarchyFn()
	}
	return nil
}

var _ services.CategoryRegistrar = (*mockRegistry)(nil)

func setupCategoryRouter(handler *CategoryHandler) *gin.Engine {
	r := gin.New()
	r.GET("/categories", handler.GetCategories)
	r.POST("/categories/:name/subcategories", handler.AddSubcategory)
	r.DELETE("/categories/:name/subcategories/:sub", handler.DeleteSubcategory)
	return r
}

func TestGetCategories(t *testing.T) {
	registry := &mockRegistry{
		availableFn: func() []string { return []string{"Food", "Pets"} },
		stylesFn: func() map[string]models.CategoryStyle {
			return map[string]models.CategoryStyle{
				"Food": {ColorClass: "bg-orange-100 text-orange-600"},
				"Pets": {ColorClass: "bg-cyan-100 text-cyan-600", IsCustom: true},
			}
		},
		hierarchyFn: func() map[string][]string {
			return map[string][]string{"Food": {"Groceries"}}
		},
	}
	r := setupCategoryRouter(NewCategoryHandler(registry))

	rec := doRequest(r, "GET", "/categories", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	cats := result["categories"].([]interface{})
	if len(cats) != 2 || cats[0] != "Food" || cats[1] != "Pets" {
		t.Errorf("unexpected categories: %v", cats)
	}
	if _, ok := result["styles"].(map[string]interface{}); !ok {
		t.Error("expected styles object")
	}
	hierarchy := result["hierarchy"].(map[string]interface{})
	if subs := hierarchy["Food"].([]interface{}); len(subs) != 1 || subs[0] != "Groceries" {
		t.Errorf("unexpected hierarchy: %v", hierarchy)
	}
}

func TestAddSubcategory(t *testing.T) {
	t.Run("returns_201_with_canonical_entry", func(t *testing.T) {
		registry := &mockRegistry{
			registerSubcategoryFn: func(category, sub string) (string, error) {
				if category != "Food" {
					t.Errorf("expected category Food, got %q", category)
				}
				return "Groceries", nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(registry))

		rec := doRequest(r, "POST", "/categories/Food/subcategories", `{"name":"groceries"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["subcategory"] != "Groceries" {
			t.Errorf("expected canonical Groceries, got %v", result["subcategory"])
		}
	})

	t.Run("blank_name_rejected", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockRegistry{}))

		for _, body := range []string{`{}`, `{"name":""}`, `{"name":"   "}`} {
			rec := doRequest(r, "POST", "/categories/Food/subcategories", body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("body %s: expected 400, got %d", body, rec.Code)
			}
		}
	})
}

func TestDeleteSubcategory(t *testing.T) {
	var gotCategory, gotSub string
	registry := &mockRegistry{
		deleteSubcategoryFn: func(category, sub string) error {
			gotCategory, gotSub = category, sub
			return nil
		},
	}
	r := setupCategoryRouter(NewCategoryHandler(registry))

	rec := doRequest(r, "DELETE", "/categories/Food/subcategories/Groceries", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotCategory != "Food" || gotSub != "Groceries" {
		t.Errorf("expected Food/Groceries, got %s/%s", gotCategory, gotSub)
	}
}
