package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"oficina_xpto/internal/domain/entities"
)

func TestActorMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("builds actor from headers", func(t *testing.T) {
		var got entities.Actor
		r := gin.New()
		r.Use(Actor())
		r.GET("/", func(c *gin.Context) {
			got = ActorFrom(c)
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderUserID, " user-1 ")
		req.Header.Set(HeaderPermissions, "service_orders, estoque ,,")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got.ID != "user-1" {
			t.Fatalf("expected trimmed user id, got %q", got.ID)
		}
		if !got.Can(entities.PermissionServiceOrders) || !got.Can(entities.PermissionStock) {
			t.Fatalf("expected both permissions, got %+v", got.Permissions)
		}
		if got.Can(entities.PermissionFinance) {
			t.Fatalf("expected no finance permission, got %+v", got.Permissions)
		}
	})

	t.Run("missing headers yield powerless actor", func(t *testing.T) {
		var got entities.Actor
		r := gin.New()
		r.Use(Actor())
		r.GET("/", func(c *gin.Context) {
			got = ActorFrom(c)
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got.ID != "" || got.Can(entities.PermissionServiceOrders) {
			t.Fatalf("expected powerless actor, got %+v", got)
		}
	})
}

func TestTenantFrom(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var got string
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		got = TenantFrom(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderTenantID, "  oficina-centro ")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got != "oficina-centro" {
		t.Fatalf("expected oficina-centro, got %q", got)
	}
}
