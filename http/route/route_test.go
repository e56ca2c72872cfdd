package route_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/switchyard-web/switchyard"
	"github.com/switchyard-web/switchyard/http/route"
	"github.com/switchyard-web/switchyard/resource"
)

func TestRouteCall(t *testing.T) {
	desc, err := resource.NewDescriptor(newBlogPost())
	require.Nil(t, err)
	show, err := desc.Handler("find_by_id")
	require.Nil(t, err)
	initialize, err := desc.Handler("initialize")
	require.Nil(t, err)
	index, err := desc.Handler("all")
	require.Nil(t, err)

	tcs := []struct {
		name     string
		template string
		handler  resource.Handler
		kind     route.Kind
		req      route.Request
		expected string
		err      error
	}{
		{
			name:     "Show",
			template: "/blog_post/:id",
			handler:  show,
			kind:     route.KindShow,
			req:      route.Request{Path: "/blog_post/42"},
			expected: "blog_post/show: one(deep thoughts)",
		},
		{
			name:     "New",
			template: "/blog_post/new",
			handler:  initialize,
			kind:     route.KindNew,
			req:      route.Request{Path: "/blog_post/new", Params: route.Params{"title": "hi"}},
			expected: "blog_post/new: one(map[title:hi])",
		},
		{
			name:     "Index",
			template: "/blog_post",
			handler:  index,
			kind:     route.KindIndex,
			req:      route.Request{Path: "/blog_post"},
			expected: "blog_post/index: many([first! deep thoughts])",
		},
		{
			name:     "Bad-Path-Argument",
			template: "/blog_post/:id",
			handler:  show,
			kind:     route.KindShow,
			req:      route.Request{Path: "/blog_post/latest"},
			err:      switchyard.ErrBadPathArgument,
		},
		{
			name:     "Handler-Error-Propagates",
			template: "/blog_post/:id",
			handler:  show,
			kind:     route.KindShow,
			req:      route.Request{Path: "/blog_post/999"},
			err:      errGone,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			r := &stubRenderer{}
			rt := route.NewRoute(tc.template, tc.handler, tc.kind, desc, r)
			require.True(t, rt.Matches(tc.req.Path))

			out, err := rt.Call(tc.req)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				require.Empty(t, r.rendered)
				return
			}

			require.Nil(t, err)
			require.Equal(t, tc.expected, string(out))
		})
	}
}
