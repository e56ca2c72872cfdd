package route_test

import (
	"errors"
	"fmt"

	"github.com/switchyard-web/switchyard/resource"
)

var errGone = errors.New("record gone")

// stubRenderer records what it rendered and echoes it back as the output.
type stubRenderer struct {
	rendered []string
}

func (s *stubRenderer) Render(resourceName, kind string, presenter any) ([]byte, error) {
	out := fmt.Sprintf("%s/%s: %v", resourceName, kind, presenter)
	s.rendered = append(s.rendered, out)
	return []byte(out), nil
}

// BlogPost is a test resource over a fixed set of records.
type BlogPost struct {
	records map[int]string
}

func newBlogPost() *BlogPost {
	return &BlogPost{records: map[int]string{1: "first!", 42: "deep thoughts"}}
}

func (bp *BlogPost) Handlers() []resource.Handler {
	return []resource.Handler{
		{
			Name:   "find_by_id",
			Params: []string{"id"},
			Fn: func(args []any) (any, error) {
				rec, ok := bp.records[args[0].(int)]
				if !ok {
					return nil, errGone
				}

				return rec, nil
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
			Fn:       func([]any) (any, error) { return []string{"first!", "deep thoughts"}, nil },
		},
	}
}

func (*BlogPost) PresentOne(record any) any   { return fmt.Sprintf("one(%v)", record) }
func (*BlogPost) PresentMany(records any) any { return fmt.Sprintf("many(%v)", records) }

// Widget is a second test resource whose handlers only echo their inputs.
type Widget struct{}

func (Widget) Handlers() []resource.Handler {
	return []resource.Handler{
		{
			Name:   "find_by_id",
			Params: []string{"id"},
			Fn:     func(args []any) (any, error) { return args[0], nil },
		},
		{
			Name:     "all",
			Variadic: true,
			Fn:       func([]any) (any, error) { return []int{1, 2, 3}, nil },
		},
	}
}

func (Widget) PresentOne(record any) any   { return record }
func (Widget) PresentMany(records any) any { return records }
