package server_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"github.com/switchyard-web/switchyard"
	"github.com/switchyard-web/switchyard/http/middleware"
	"github.com/switchyard-web/switchyard/http/route"
	"github.com/switchyard-web/switchyard/http/server"
	"github.com/switchyard-web/switchyard/http/template"
	"github.com/switchyard-web/switchyard/logger"
	"github.com/switchyard-web/switchyard/resource"
)

var errBoom = errors.New("boom")

// BlogPost routes to a fixed pair of records; id 13 always errors.
type BlogPost struct{}

func (BlogPost) Handlers() []resource.Handler {
	return []resource.Handler{
		{
			Name:   "find_by_id",
			Params: []string{"id"},
			Fn: func(args []any) (any, error) {
				if args[0].(int) == 13 {
					return nil, errBoom
				}

				return args[0], nil
			},
		},
		{
			Name:   "initialize",
			Params: []string{"params"},
			Fn:     func(args []any) (any, error) { return args[0], nil },
		},
		{
			Name:     "all",
			Variadic: true,
			Fn:       func([]any) (any, error) { return []int{1, 2}, nil },
		},
	}
}

func (BlogPost) PresentOne(record any) any   { return record }
func (BlogPost) PresentMany(records any) any { return map[string]any{"Posts": records} }

func newServer(t *testing.T) *server.Server {
	t.Helper()

	e := template.NewEngine(template.WithFS(fstest.MapFS{
		"tmpl/blog_post/show.tmpl":  {Data: []byte(`post {{.}}`)},
		"tmpl/blog_post/new.tmpl":   {Data: []byte(`draft {{.title}}`)},
		"tmpl/blog_post/index.tmpl": {Data: []byte(`{{len .Posts}} posts`)},
	}))

	router, err := route.NewTable(BlogPost{}, e).
		New().
		Show().
		Index().
		Router()
	require.Nil(t, err)

	s := server.New(switchyard.Development, route.NewDispatcher(router), logger.New())
	s.OnEveryRequest(middleware.RequestID())
	s.Mount()
	return s
}

func TestServerDispatch(t *testing.T) {
	s := newServer(t)
	tcs := []struct {
		name   string
		path   string
		code   int
		body   string
	}{
		{"Show", "/blog_post/42", http.StatusOK, "post 42"},
		{"Index", "/blog_post", http.StatusOK, "2 posts"},
		{"No-Route", "/gizmo", http.StatusNotFound, ""},
		{"Bad-Path-Argument", "/blog_post/latest", http.StatusBadRequest, ""},
		{"Handler-Error", "/blog_post/13", http.StatusInternalServerError, ""},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "https://example.com"+tc.path, nil)
			s.ServeHTTP(w, r)

			require.Equal(t, tc.code, w.Code)
			if tc.body != "" {
				require.Equal(t, tc.body, w.Body.String())
			}
		})
	}
}

func TestServerMergesQueryAndBody(t *testing.T) {
	// Arrange: title arrives in the form body, not the query string.
	s := newServer(t)
	form := url.Values{"title": []string{"hi"}}
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "https://example.com/blog_post/new", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// Act
	s.ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.Nil(t, err)
	require.Equal(t, "draft hi", string(body))
}
