package resource_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/switchyard-web/switchyard"
	"github.com/switchyard-web/switchyard/resource"
)

type BlogPost struct{ handlers []resource.Handler }

func (bp BlogPost) Handlers() []resource.Handler { return bp.handlers }
func (BlogPost) PresentOne(record any) any       { return map[string]any{"one": record} }
func (BlogPost) PresentMany(records any) any     { return map[string]any{"many": records} }

type Widget struct{}

func (Widget) Handlers() []resource.Handler {
	return []resource.Handler{{Name: "all", Variadic: true, Fn: func([]any) (any, error) { return nil, nil }}}
}
func (Widget) PresentOne(record any) any   { return record }
func (Widget) PresentMany(records any) any { return records }

func newBlogPost() *BlogPost {
	return &BlogPost{handlers: []resource.Handler{
		{Name: "find_by_id", Params: []string{"id"}, Fn: func(args []any) (any, error) { return args[0], nil }},
	}}
}

func TestNewDescriptor(t *testing.T) {
	tcs := []struct {
		name string
		def  resource.Definition
		err  error
	}{
		{"Nil", nil, switchyard.ErrBadConvention},
		{"No-Handlers", BlogPost{}, switchyard.ErrBadConvention},
		{"Nameless-Fn", &BlogPost{handlers: []resource.Handler{{Fn: func([]any) (any, error) { return nil, nil }}}}, switchyard.ErrBadConvention},
		{"Nil-Fn", &BlogPost{handlers: []resource.Handler{{Name: "all"}}}, switchyard.ErrBadConvention},
		{"Valid", newBlogPost(), nil},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			d, err := resource.NewDescriptor(tc.def)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				require.Nil(t, d)
				return
			}

			require.Nil(t, err)
			require.NotNil(t, d)
		})
	}
}

func TestDescriptorName(t *testing.T) {
	tcs := []struct {
		name     string
		def      resource.Definition
		expected string
	}{
		{"Compound", newBlogPost(), "blog_post"},
		{"Simple", Widget{}, "widget"},
		{"Pointer", &Widget{}, "widget"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			d, err := resource.NewDescriptor(tc.def)
			require.Nil(t, err)
			require.Equal(t, tc.expected, d.Name())
		})
	}
}

func TestDescriptorHandler(t *testing.T) {
	// Arrange
	d, err := resource.NewDescriptor(newBlogPost())
	require.Nil(t, err)

	// Act + Assert
	h, err := d.Handler("find_by_id")
	require.Nil(t, err)
	require.Equal(t, []string{"id"}, h.Params)

	_, err = d.Handler("destroy")
	require.ErrorIs(t, err, switchyard.ErrBadConvention)
}

func TestDescriptorPresenters(t *testing.T) {
	d, err := resource.NewDescriptor(newBlogPost())
	require.Nil(t, err)

	require.Equal(t, map[string]any{"one": 1}, d.PresentOne(1))
	require.Equal(t, map[string]any{"many": []int{1, 2}}, d.PresentMany([]int{1, 2}))
}
