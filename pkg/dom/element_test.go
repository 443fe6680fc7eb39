package dom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/dom"
)

func TestKind(t *testing.T) {
	t.Parallel()

	doc := dom.New()
	tests := []struct {
		el    *dom.Element
		kind  dom.Kind
		field bool
	}{
		{doc.CreateElement("input"), dom.KindInput, true},
		{doc.CreateElement("input", dom.A("type", "CHECKBOX")), dom.KindCheckbox, true},
		{doc.CreateElement("input", dom.A("type", "radio")), dom.KindRadio, true},
		{doc.CreateElement("input", dom.A("type", "hidden")), dom.KindInput, true},
		{doc.CreateElement("select"), dom.KindSelect, true},
		{doc.CreateElement("textarea"), dom.KindTextarea, true},
		{doc.CreateElement("button"), dom.KindButton, true},
		{doc.CreateElement("output"), dom.KindOutput, true},
		{doc.CreateElement("div"), dom.KindNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.el.Kind())
			assert.Equal(t, tt.field, tt.el.Kind().IsField())
		})
	}
	assert.Equal(t, "text", doc.CreateElement("input").Type())
}

func TestElement_Classes(t *testing.T) {
	t.Parallel()

	el := dom.New().CreateElement("input", dom.A("class", "a b"))
	el.AddClass("b", "c", "")
	assert.Equal(t, []string{"a", "b", "c"}, el.Classes())

	el.RemoveClass("a", "c")
	assert.Equal(t, "b", el.GetAttr("class"))
	assert.True(t, el.HasClass("b"))
	assert.False(t, el.HasClass("a"))
}

func TestElement_Tree(t *testing.T) {
	t.Parallel()

	doc := dom.New()
	form := doc.Form()
	a := doc.CreateElement("input", dom.A("name", "a"))
	b := doc.CreateElement("input", dom.A("name", "b"))
	c := doc.CreateElement("input", dom.A("name", "c"))

	require.NoError(t, form.AppendChild(a))
	require.NoError(t, form.AppendChild(c))
	require.NoError(t, a.InsertAfter(b))
	assert.Equal(t, []*dom.Element{a, b, c}, form.Children())
	assert.True(t, b.IsConnected())

	require.NoError(t, form.InsertBefore(c, a))
	assert.Equal(t, []*dom.Element{c, a, b}, form.Children())

	b.Remove()
	assert.False(t, b.IsConnected())
	assert.Nil(t, b.Parent())
	assert.ErrorIs(t, b.InsertAfter(a), dom.ErrDetached)

	wrap := doc.CreateElement("div")
	require.NoError(t, form.AppendChild(wrap))
	assert.ErrorIs(t, wrap.AppendChild(form), dom.ErrHierarchy)
	assert.NoError(t, form.InsertBefore(b, b))
	assert.ErrorIs(t, wrap.InsertBefore(b, a), dom.ErrNotChild)
	assert.ErrorIs(t, form.AppendChild(dom.New().CreateElement("input")), dom.ErrForeignNode)

	fields := doc.Query(func(e *dom.Element) bool { return e.Kind().IsField() })
	assert.Equal(t, []*dom.Element{c, a}, fields)

	inner := doc.CreateElement("input")
	require.NoError(t, wrap.AppendChild(inner))
	assert.Equal(t, wrap, inner.ClosestAncestor(func(e *dom.Element) bool { return e.Tag() == "div" }))
	assert.Equal(t, form, inner.ClosestAncestor(func(e *dom.Element) bool { return e.Tag() == "form" }))
}

func TestElement_Value(t *testing.T) {
	t.Parallel()

	doc := dom.New()

	t.Run("input falls back to the attribute until set", func(t *testing.T) {
		in := doc.CreateElement("input", dom.A("value", "initial"))
		assert.Equal(t, "initial", in.Value())
		in.SetValue("typed")
		assert.Equal(t, "typed", in.Value())
		assert.Equal(t, "initial", in.GetAttr("value"))
	})

	t.Run("checkbox defaults to on", func(t *testing.T) {
		cb := doc.CreateElement("input", dom.A("type", "checkbox"))
		assert.Equal(t, "on", cb.Value())
		cb.SetValue("yes")
		assert.Equal(t, "yes", cb.Value())
		assert.False(t, cb.Checked())
	})

	t.Run("textarea uses text content", func(t *testing.T) {
		ta := doc.CreateElement("textarea")
		require.NoError(t, ta.AppendChild(doc.CreateText("hello")))
		assert.Equal(t, "hello", ta.Value())
	})
}

func TestElement_RadioExclusivity(t *testing.T) {
	t.Parallel()

	doc := dom.New()
	r1 := doc.CreateElement("input", dom.A("type", "radio"), dom.A("name", "plan"), dom.A("checked", ""))
	r2 := doc.CreateElement("input", dom.A("type", "radio"), dom.A("name", "plan"))
	other := doc.CreateElement("input", dom.A("type", "radio"), dom.A("name", "size"), dom.A("checked", ""))
	for _, r := range []*dom.Element{r1, r2, other} {
		require.NoError(t, doc.Form().AppendChild(r))
	}

	assert.True(t, r1.Checked())
	r2.SetChecked(true)
	assert.False(t, r1.Checked())
	assert.True(t, r2.Checked())
	assert.True(t, other.Checked())
}

func TestElement_Select(t *testing.T) {
	t.Parallel()

	doc, err := dom.ParseString(`<form>
		<select name="single"><option value="a">A</option><option>B</option></select>
		<select name="multi" multiple><option value="x" selected>X</option><option value="y">Y</option></select>
	</form>`)
	require.NoError(t, err)

	sel := doc.Query(func(e *dom.Element) bool { return e.Name() == "single" })[0]
	multi := doc.Query(func(e *dom.Element) bool { return e.Name() == "multi" })[0]

	assert.Equal(t, "a", sel.Value())
	sel.SetValue("B")
	assert.Equal(t, "B", sel.Value())
	assert.False(t, sel.Options()[0].Selected())

	sel.SetValue("missing")
	assert.Equal(t, "", sel.Value())

	sel.Options()[0].SetSelected(true)
	assert.Equal(t, "a", sel.Value())

	assert.True(t, multi.Multiple())
	assert.Equal(t, []string{"x"}, multi.SelectedValues())
	multi.SelectValues([]string{"x", "y"})
	assert.Equal(t, []string{"x", "y"}, multi.SelectedValues())
}

func TestElement_Rendered(t *testing.T) {
	t.Parallel()

	doc, err := dom.ParseString(`<form>
		<input name="visible">
		<input name="hidden-type" type="hidden">
		<input name="hidden-attr" hidden>
		<div style="color: red; display: none"><input name="in-hidden-div"></div>
	</form>`)
	require.NoError(t, err)

	rendered := map[string]bool{}
	for _, e := range doc.Query(func(e *dom.Element) bool { return e.Kind().IsField() }) {
		rendered[e.Name()] = e.Rendered()
	}
	assert.Equal(t, map[string]bool{
		"visible":       true,
		"hidden-type":   false,
		"hidden-attr":   false,
		"in-hidden-div": false,
	}, rendered)

	assert.False(t, doc.CreateElement("input").Rendered())
}
