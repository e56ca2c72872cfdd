package route_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/switchyard-web/switchyard"
	"github.com/switchyard-web/switchyard/http/route"
)

func TestRouterFirstMatchWins(t *testing.T) {
	// Arrange: two routes whose templates both match /blog_post/new.
	r := &stubRenderer{}
	router, err := route.NewTable(newBlogPost(), r).
		New().
		Show().
		Router()
	require.Nil(t, err)

	// Act
	out, err := router.Call(route.Request{Path: "/blog_post/new"})

	// Assert: new registered first, so show never ran.
	require.Nil(t, err)
	require.Equal(t, "blog_post/new: one(map[])", string(out))
}

func TestRouterLaterRouteStillReachable(t *testing.T) {
	r := &stubRenderer{}
	router, err := route.NewTable(newBlogPost(), r).
		New().
		Show().
		Router()
	require.Nil(t, err)

	out, err := router.Call(route.Request{Path: "/blog_post/42"})
	require.Nil(t, err)
	require.Equal(t, "blog_post/show: one(deep thoughts)", string(out))
}

func TestRouterNoMatch(t *testing.T) {
	router, err := route.NewTable(newBlogPost(), &stubRenderer{}).Index().Router()
	require.Nil(t, err)

	require.False(t, router.Matches("/widget"))

	out, err := router.Call(route.Request{Path: "/widget"})
	require.ErrorIs(t, err, switchyard.ErrNoMatch)
	require.Nil(t, out)
}
