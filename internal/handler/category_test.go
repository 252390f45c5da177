package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/wakili/console/internal/model"
	"gorm.io/gorm"
)

func categoryRouter(db *gorm.DB) *gin.Engine {
	h := NewCategoryHandler(db)
	r := gin.New()
	r.Use(asAdmin("admin-1", model.RoleAdmin))
	r.GET("/api/law-categories", h.List)
	r.POST("/api/law-categories", h.Create)
	r.PATCH("/api/law-categories/:id", h.Update)
	r.DELETE("/api/law-categories/:id", h.Delete)
	return r
}

func TestCreateCategory(t *testing.T) {
	db := testDB(t)
	r := categoryRouter(db)

	w := performJSON(r, http.MethodPost, "/api/law-categories",
		CreateCategoryRequest{Name: "Family Law", Description: "Divorce and custody"})
	expectStatus(t, w, http.StatusCreated)

	got := decodeBody[model.LawCategory](t, w)
	if got.ID == "" {
		t.Error("created category has no id")
	}
	if got.Name != "Family Law" {
		t.Errorf("name = %q", got.Name)
	}
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	db := testDB(t)
	r := categoryRouter(db)

	w := performJSON(r, http.MethodPost, "/api/law-categories",
		CreateCategoryRequest{Name: "Family Law"})
	expectStatus(t, w, http.StatusCreated)

	w = performJSON(r, http.MethodPost, "/api/law-categories",
		CreateCategoryRequest{Name: "Family Law"})
	expectStatus(t, w, http.StatusConflict)

	var count int64
	db.Model(&model.LawCategory{}).Count(&count)
	if count != 1 {
		t.Errorf("category rows = %d, want 1", count)
	}
}

func TestCreateCategoryEmptyName(t *testing.T) {
	db := testDB(t)
	r := categoryRouter(db)

	w := performJSON(r, http.MethodPost, "/api/law-categories",
		CreateCategoryRequest{Name: "   "})
	expectStatus(t, w, http.StatusBadRequest)
}

func TestDeleteCategory(t *testing.T) {
	db := testDB(t)
	r := categoryRouter(db)

	w := performJSON(r, http.MethodPost, "/api/law-categories",
		CreateCategoryRequest{Name: "Family Law"})
	expectStatus(t, w, http.StatusCreated)
	created := decodeBody[model.LawCategory](t, w)

	w = performJSON(r, http.MethodDelete, "/api/law-categories/"+created.ID, nil)
	expectStatus(t, w, http.StatusNoContent)

	var count int64
	db.Model(&model.LawCategory{}).Count(&count)
	if count != 0 {
		t.Error("category row still present after delete")
	}
}
