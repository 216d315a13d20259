package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eshop-back/pkg/router"
)

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestGroupPrefixing(t *testing.T) {
	r := router.New()
	api := r.Group("/api")
	api.Get("/Products", "products.index", ok)

	nested := api.Group("", func(next http.Handler) http.Handler { return next })
	nested.Get("/Order", "orders.index", ok)

	for _, path := range []string{"/api/Products", "/api/Order"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.Handler().ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestGroupMiddlewareApplies(t *testing.T) {
	var order []string
	mw := func(tag string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, tag)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := router.New()
	g := r.Group("/api", mw("group"))
	g.Get("/x", "x", ok, mw("route"))

	req := httptest.NewRequest(http.MethodGet, "/api/x", nil)
	r.Handler().ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, []string{"group", "route"}, order)
}

func TestNamedRouteURL(t *testing.T) {
	r := router.New()
	api := r.Group("/api")
	api.Get("/Products/{id}", "products.show", ok)

	url, err := r.URL("products.show", map[string]string{"id": "7"})
	require.NoError(t, err)
	assert.Equal(t, "/api/Products/7", url)

	_, err = r.URL("products.show", nil)
	assert.Error(t, err, "unsubstituted params are an error")

	_, err = r.URL("missing.route", nil)
	assert.Error(t, err)
}

func TestRoutesListing(t *testing.T) {
	r := router.New()
	api := r.Group("/api")
	api.Get("/b", "b.index", ok)
	api.Get("/a", "a.index", ok)
	api.Post("/a", "a.create", ok)

	infos := r.Routes()
	require.Len(t, infos, 3)
	assert.Equal(t, "/api/a", infos[0].Path)
	assert.Equal(t, http.MethodGet, infos[0].Method)
	assert.Equal(t, http.MethodPost, infos[1].Method)
	assert.Equal(t, "/api/b", infos[2].Path)
}

func TestMethodNotAllowed(t *testing.T) {
	r := router.New()
	r.Get("/only-get", "only.get", ok)

	req := httptest.NewRequest(http.MethodPost, "/only-get", nil)
	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
