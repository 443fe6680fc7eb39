package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/messages"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

type ruleCase struct {
	name   string
	value  any
	params []any
	want   string
}

func runRule(t *testing.T, fn validator.Func, cases []ruleCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := fn(context.Background(), tc.value, tc.params, validator.MapContext{Field: "f"})
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRequired(t *testing.T) {
	t.Parallel()
	runRule(t, validator.Required, []ruleCase{
		{name: "empty string", value: "", want: "Field is required"},
		{name: "nil", value: nil, want: "Field is required"},
		{name: "empty selection", value: []string{}, want: "Field is required"},
		{name: "whitespace counts as filled", value: " ", want: ""},
		{name: "filled", value: "x", want: ""},
		{name: "selection", value: []string{"a"}, want: ""},
	})
}

func TestEmail(t *testing.T) {
	t.Parallel()
	runRule(t, validator.Email, []ruleCase{
		{name: "empty passes", value: "", want: ""},
		{name: "valid", value: "user@example.com", want: ""},
		{name: "not an email", value: "not-an-email", want: "Provide a valid e-mail"},
		{name: "display name", value: "User <user@example.com>", want: "Provide a valid e-mail"},
		{name: "no dot in domain", value: "user@localhost", want: "Provide a valid e-mail"},
		{name: "every item checked", value: []string{"a@b.co", "bad"}, want: "Provide a valid e-mail"},
	})
}

func TestDate(t *testing.T) {
	t.Parallel()
	runRule(t, validator.Date, []ruleCase{
		{name: "valid", value: "31.12.2024", want: ""},
		{name: "empty passes", value: "", want: ""},
		{name: "wrong separator", value: "31/12/2024", want: "Provide a valid date: DD.MM.YYYY"},
		{name: "impossible day", value: "31.02.2024", want: "Provide a valid date: DD.MM.YYYY"},
		{name: "iso", value: "2024-12-31", want: "Provide a valid date: DD.MM.YYYY"},
	})
}

func TestPhone(t *testing.T) {
	t.Parallel()
	runRule(t, validator.Phone, []ruleCase{
		{name: "e164", value: "+14155552671", want: ""},
		{name: "formatted", value: "+1 (415) 555-2671", want: ""},
		{name: "too short", value: "12345", want: "Provide a valid phone number"},
		{name: "letters", value: "call me", want: "Provide a valid phone number"},
	})
}

func TestInstagram(t *testing.T) {
	t.Parallel()
	runRule(t, validator.Instagram, []ruleCase{
		{name: "full url", value: "https://www.instagram.com/someone", want: ""},
		{name: "short domain", value: "instagr.am/someone", want: ""},
		{name: "other site", value: "https://example.com/someone", want: "Provide a valid url"},
	})
}

func TestURLAndUUID(t *testing.T) {
	t.Parallel()
	runRule(t, validator.URL, []ruleCase{
		{name: "valid", value: "https://example.com/path", want: ""},
		{name: "no host", value: "/relative", want: "Provide a valid url"},
		{name: "scheme restriction", value: "ftp://example.com", params: []any{"http", "https"}, want: "Provide a valid url"},
	})
	runRule(t, validator.UUID, []ruleCase{
		{name: "valid", value: "123e4567-e89b-12d3-a456-426614174000", want: ""},
		{name: "braces", value: "{123e4567-e89b-12d3-a456-426614174000}", want: "Provide a valid UUID"},
	})
}

func TestCharacterClasses(t *testing.T) {
	t.Parallel()
	runRule(t, validator.Alpha, []ruleCase{
		{name: "letters", value: "Jürgen", want: ""},
		{name: "digits", value: "abc1", want: "Only letters are allowed"},
	})
	runRule(t, validator.AlphaNum, []ruleCase{
		{name: "mixed", value: "abc123", want: ""},
		{name: "space", value: "abc 123", want: "Only letters and digits are allowed"},
	})
	runRule(t, validator.Slug, []ruleCase{
		{name: "slug", value: "hello-world-2", want: ""},
		{name: "double dash", value: "hello--world", want: "Only lowercase letters, digits and dashes are allowed"},
	})
}

func TestLengthRules(t *testing.T) {
	t.Parallel()
	runRule(t, validator.MinLen, []ruleCase{
		{name: "too short", value: "ab", params: []any{"3"}, want: "Must be at least 3 characters"},
		{name: "runes not bytes", value: "äöü", params: []any{"3"}, want: ""},
		{name: "empty passes", value: "", params: []any{"3"}, want: ""},
	})
	runRule(t, validator.MaxLen, []ruleCase{
		{name: "too long", value: "abcd", params: []any{"3"}, want: "Must be at most 3 characters"},
		{name: "ok", value: "abc", params: []any{"3"}, want: ""},
	})
	runRule(t, validator.Between, []ruleCase{
		{name: "inside", value: "abc", params: []any{"2", "4"}, want: ""},
		{name: "outside", value: "a", params: []any{"2", "4"}, want: "Must be between 2 and 4 characters"},
	})
}

func TestNumericRules(t *testing.T) {
	t.Parallel()
	runRule(t, validator.Numeric, []ruleCase{
		{name: "decimal", value: "3.14", want: ""},
		{name: "text", value: "pi", want: "Must be a number"},
	})
	runRule(t, validator.Integer, []ruleCase{
		{name: "whole", value: "-42", want: ""},
		{name: "decimal", value: "4.2", want: "Must be a whole number"},
	})
	runRule(t, validator.MinValue, []ruleCase{
		{name: "above", value: "18", params: []any{"18"}, want: ""},
		{name: "below", value: "17", params: []any{"18"}, want: "Must be at least 18"},
	})
	runRule(t, validator.MaxValue, []ruleCase{
		{name: "above", value: "100.5", params: []any{"100"}, want: "Must be at most 100"},
	})
}

func TestChoiceRules(t *testing.T) {
	t.Parallel()
	runRule(t, validator.In, []ruleCase{
		{name: "listed", value: "b", params: []any{"a", "b"}, want: ""},
		{name: "not listed", value: "c", params: []any{"a", "b"}, want: "Select a valid option"},
		{name: "multi all listed", value: []string{"a", "b"}, params: []any{"a", "b"}, want: ""},
		{name: "multi one unlisted", value: []string{"a", "z"}, params: []any{"a", "b"}, want: "Select a valid option"},
	})
	runRule(t, validator.NotIn, []ruleCase{
		{name: "forbidden", value: "admin", params: []any{"admin", "root"}, want: "This value is not allowed"},
		{name: "allowed", value: "bob", params: []any{"admin", "root"}, want: ""},
	})
	runRule(t, validator.Accepted, []ruleCase{
		{name: "checked box", value: []string{"on"}, want: ""},
		{name: "unchecked box", value: []string{}, want: "Must be accepted"},
		{name: "yes", value: "Yes", want: ""},
		{name: "no", value: "no", want: "Must be accepted"},
	})
}

func TestComparisonRules(t *testing.T) {
	t.Parallel()
	runRule(t, validator.Same, []ruleCase{
		{name: "match", value: "secret", params: []any{"secret"}, want: ""},
		{name: "mismatch", value: "secret", params: []any{"other"}, want: "Values do not match"},
		{name: "absent reference equals empty", value: "", params: []any{nil}, want: ""},
		{name: "slices", value: []string{"a", "b"}, params: []any{[]string{"a", "b"}}, want: ""},
	})
	runRule(t, validator.Different, []ruleCase{
		{name: "differs", value: "new", params: []any{"old"}, want: ""},
		{name: "equal", value: "old", params: []any{"old"}, want: "Must differ from the other field"},
		{name: "empty passes", value: "", params: []any{""}, want: ""},
	})
}

func TestRuleFaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	vc := validator.MapContext{}

	_, err := validator.MinLen(ctx, "x", nil, vc)
	assert.ErrorIs(t, err, validator.ErrMissingParam)

	_, err = validator.MaxLen(ctx, "x", []any{"many"}, vc)
	assert.ErrorIs(t, err, validator.ErrInvalidParam)

	_, err = validator.Same(ctx, "x", nil, vc)
	assert.ErrorIs(t, err, validator.ErrMissingParam)

	_, err = validator.In(ctx, "x", nil, vc)
	assert.ErrorIs(t, err, validator.ErrMissingParam)
}

func TestMapContext_Message(t *testing.T) {
	t.Parallel()

	vc := validator.MapContext{
		Field:    "name",
		Values:   map[string]any{"other": "v"},
		Catalog:  messages.Default(),
		Language: "ru",
	}
	assert.Equal(t, "name", vc.FieldName())
	assert.Equal(t, "v", vc.FieldValue("other"))
	assert.Nil(t, vc.FieldValue("missing"))

	msg, err := validator.Required(context.Background(), "", nil, vc)
	require.NoError(t, err)
	assert.Equal(t, "Обязательное поле", msg)
}

func TestValueHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.IsEmpty(nil))
	assert.True(t, validator.IsEmpty([]string{}))
	assert.False(t, validator.IsEmpty("0"))
	assert.Equal(t, []string{"a", "b"}, validator.Strings([]string{"a", "", "b"}))
	assert.Nil(t, validator.Strings(""))
	assert.True(t, validator.Equal(nil, ""))
	assert.False(t, validator.Equal("a", []string{"a", "b"}))
}
