/*

Package main provides a toy example use of switchyard's resource stack.

Run it and visit:

	http://localhost:3000/blog_post
	http://localhost:3000/blog_post/1
	http://localhost:3000/blog_post/new
	http://localhost:3000/blog_post/search?q=switch
	http://localhost:3000/widget

*/
package main

import (
	"embed"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/switchyard-web/switchyard"
	"github.com/switchyard-web/switchyard/conductor"
	"github.com/switchyard-web/switchyard/http/route"
	"github.com/switchyard-web/switchyard/http/template"
	"github.com/switchyard-web/switchyard/resource"
)

//go:embed tmpl
var files embed.FS

// A BlogPost is the example resource.
// Real apps would back handlers with a postgres.Store;
// a package-level map keeps the example self-contained.
type BlogPost struct {
	ID    int
	Title string
	Body  string
}

var posts = map[int]BlogPost{
	1: {ID: 1, Title: "All aboard", Body: "Welcome to the example app."},
	2: {ID: 2, Title: "Switching yards", Body: "Routes funnel into handlers here."},
}

func (bp BlogPost) Handlers() []resource.Handler {
	return []resource.Handler{
		{
			Name:   "find_by_id",
			Params: []string{"id"},
			Fn: func(args []any) (any, error) {
				id := args[0].(int)
				post, ok := posts[id]
				if !ok {
					return nil, fmt.Errorf("%w: blog post %d", switchyard.ErrNotExist, id)
				}

				return post, nil
			},
		},
		{
			Name:     "initialize",
			Variadic: true,
			Fn:       func(_ []any) (any, error) { return BlogPost{}, nil },
		},
		{
			Name:     "all",
			Variadic: true,
			Fn:       func(_ []any) (any, error) { return allPosts(), nil },
		},
		{
			Name:   "search",
			Params: []string{"params"},
			Fn: func(args []any) (any, error) {
				q := args[0].(route.Params)["q"]
				var found []BlogPost
				for _, post := range allPosts() {
					if strings.Contains(strings.ToLower(post.Title), strings.ToLower(q)) {
						found = append(found, post)
					}
				}

				return found, nil
			},
		},
	}
}

func (bp BlogPost) PresentOne(val any) any { return val }

func (bp BlogPost) PresentMany(val any) any {
	all, _ := val.([]BlogPost)
	return map[string]any{"Count": len(all), "Posts": all}
}

// A Widget is a second resource, showing two route tables
// registered on one dispatcher.
type Widget struct {
	ID   int
	Name string
}

var widgets = []Widget{
	{ID: 1, Name: "sprocket"},
	{ID: 2, Name: "gear"},
	{ID: 3, Name: "coupler"},
}

func (w Widget) Handlers() []resource.Handler {
	return []resource.Handler{
		{
			Name:   "find_by_id",
			Params: []string{"id"},
			Fn: func(args []any) (any, error) {
				id := args[0].(int)
				for _, widget := range widgets {
					if widget.ID == id {
						return widget, nil
					}
				}

				return nil, fmt.Errorf("%w: widget %d", switchyard.ErrNotExist, id)
			},
		},
		{
			Name:     "all",
			Variadic: true,
			Fn:       func(_ []any) (any, error) { return widgets, nil },
		},
	}
}

func (w Widget) PresentOne(val any) any  { return val }
func (w Widget) PresentMany(val any) any { return val }

func allPosts() []BlogPost {
	all := make([]BlogPost, 0, len(posts))
	for _, post := range posts {
		all = append(all, post)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	return all
}

func main() {
	c, err := conductor.New(
		conductor.WithEngine(template.NewEngine(template.WithFS(files))),
	)
	if err != nil {
		log.Fatal(err)
	}

	// NOTE: /blog_post/:id matches any second segment,
	// so the literal routes register ahead of Show.
	err = c.Register(
		route.NewTable(BlogPost{}, c.EmitEngine()).
			New().
			Handle("/blog_post/search", route.KindIndex, "search").
			Index().
			Show(),
		route.NewTable(Widget{}, c.EmitEngine()).
			Index().
			Show(),
	)
	if err != nil {
		log.Fatal(err)
	}

	log.Fatal(c.Serve())
}
