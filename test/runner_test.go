package runner_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/gqlkit/gqlkit/cmd"
)

// Literal documents rendered through the whole pipeline
// (scan -> parse -> eval -> ToInput -> canonical print).
var literalSuites = map[string]string{
	"scalars_list":     `[1, 2.5, "three", true, null]`,
	"nested_object":    `{b: {d: [1, 2], c: 3}, a: "x"}`,
	"duplicate_keys":   `{a: 1, a: 2}`,
	"floats":           `[1e3, 0.25, 2.5]`,
	"unicode_string":   `"snow☃"`,
	"empty_containers": `[[], {}]`,
	"comments":         "# header\n{a: 1}\n",
}

// Documents that fail somewhere in the pipeline; golden files hold the
// error text.
var errorSuites = map[string]string{
	"scan_unterminated_string": `"abc`,
	"parse_unclosed_list":      `[1`,
	"eval_variable":            `{a: $id}`,
}

func TestRenderGolden(t *testing.T) {
	t.Parallel()

	g := goldie.New(t)
	names := maps.Keys(literalSuites)
	slices.Sort(names)

	for _, name := range names {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			out, err := cmd.NewApp().Render(literalSuites[name])
			require.NoError(t, err)
			g.Assert(t, name, []byte(out+"\n"))
		})
	}
}

func TestRenderErrorsGolden(t *testing.T) {
	t.Parallel()

	g := goldie.New(t)
	names := maps.Keys(errorSuites)
	slices.Sort(names)

	for _, name := range names {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := cmd.NewApp().Render(errorSuites[name])
			require.Error(t, err)
			g.Assert(t, name, []byte(err.Error()+"\n"))
		})
	}
}

func BenchmarkRender(b *testing.B) {
	app := cmd.NewApp()
	input := literalSuites["nested_object"]

	if _, err := app.Render(input); err != nil {
		b.Fatalf("render failed: %v", err)
	}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_, _ = app.Render(input)
	}
}
