package formkit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/dom"
	"github.com/dmitrymomot/formkit/pkg/fields"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestSplitChain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		declared string
		want     []string
	}{
		{"", nil},
		{"required", []string{"required"}},
		{" required | email ", []string{"required", "email"}},
		{"required||email|", []string{"required", "email"}},
		{"between:1, 5|same:@password", []string{"between:1, 5", "same:@password"}},
	}
	for _, tt := range tests {
		t.Run(tt.declared, func(t *testing.T) {
			assert.Equal(t, tt.want, splitChain(tt.declared))
		})
	}
}

func TestParseToken(t *testing.T) {
	t.Parallel()

	d := parseToken("required")
	assert.Equal(t, "required", d.name)
	assert.Nil(t, d.params)

	d = parseToken("between: 1 , 5")
	assert.Equal(t, "between", d.name)
	assert.Equal(t, []string{"1", "5"}, d.params)

	d = parseToken("in:")
	assert.Equal(t, "in", d.name)
	assert.Equal(t, []string{""}, d.params)
}

func newTestResolver(t *testing.T, markup string) (*dom.Document, *fields.Store, *validator.Registry, *resolver) {
	t.Helper()
	doc, err := dom.ParseString(markup)
	require.NoError(t, err)

	reg := validator.NewRegistry()
	validator.RegisterBuiltins(reg)
	store := fields.New()
	store.AddFields(doc.Form().Query(func(e *dom.Element) bool { return e.Kind().IsField() }), false)
	return doc, store, reg, newResolver("data-rules", reg, store, 4)
}

func TestResolver(t *testing.T) {
	t.Parallel()

	t.Run("union of group chains", func(t *testing.T) {
		_, _, _, r := newTestResolver(t, `<form>
			<input type="checkbox" name="c" data-rules="required|min:2">
			<input type="checkbox" name="c" data-rules="min:2|max:4">
			<input type="checkbox" name="c">
		</form>`)

		assert.Equal(t, []string{"required", "min:2", "max:4"}, r.chain("c"))
		rules := r.resolve("c")
		require.Len(t, rules, 3)
		assert.Equal(t, "required", rules[0].name)
		assert.Equal(t, []any{"2"}, rules[1].params)
		assert.NotNil(t, rules[2].validator)
	})

	t.Run("references are bound per call", func(t *testing.T) {
		doc, _, _, r := newTestResolver(t, `<form>
			<input name="password" value="one">
			<input name="confirm" data-rules="same:@password,@missing">
		</form>`)

		rules := r.resolve("confirm")
		require.Len(t, rules, 1)
		assert.Equal(t, []any{"one", nil}, rules[0].params)

		doc.Query(func(e *dom.Element) bool { return e.Name() == "password" })[0].SetValue("two")
		rules = r.resolve("confirm")
		assert.Equal(t, []any{"two", nil}, rules[0].params)
	})

	t.Run("unknown rules resolve without a validator", func(t *testing.T) {
		_, _, reg, r := newTestResolver(t, `<form><input name="a" data-rules="later"></form>`)

		rules := r.resolve("a")
		require.Len(t, rules, 1)
		assert.Nil(t, rules[0].validator)

		reg.Register("later", func(context.Context, any, []any, validator.Context) (string, error) { return "", nil })
		rules = r.resolve("a")
		assert.NotNil(t, rules[0].validator)
	})

	t.Run("reset drops cached descriptors", func(t *testing.T) {
		_, _, reg, r := newTestResolver(t, `<form><input name="a" data-rules="required"></form>`)

		r.resolve("a")
		reg.Register("required", func(context.Context, any, []any, validator.Context) (string, error) {
			return "replaced", nil
		})
		r.reset()

		rules := r.resolve("a")
		require.Len(t, rules, 1)
		msg, err := rules[0].validator(context.Background(), "", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "replaced", msg)
	})

	t.Run("unregistered name", func(t *testing.T) {
		_, _, _, r := newTestResolver(t, `<form></form>`)
		assert.Empty(t, r.resolve("nobody"))
	})
}
