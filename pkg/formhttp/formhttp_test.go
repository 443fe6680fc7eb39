package formhttp_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/pkg/dom"
	"github.com/dmitrymomot/formkit/pkg/formhttp"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

const signupMarkup = `<form id="signup">
	<input name="username" data-rules="required|min:3">
	<input name="email" data-rules="required|email">
	<input type="password" name="password" data-rules="required">
	<input type="password" name="confirm" data-rules="same:@password">
	<input type="checkbox" name="topics" value="go" data-rules="required">
	<input type="checkbox" name="topics" value="web" data-rules="required">
	<input type="checkbox" name="terms" value="yes" checked>
	<button type="submit" name="action" value="signup">Sign up</button>
</form>`

func newForm(t *testing.T, opts ...formkit.Option) *formhttp.Form {
	t.Helper()
	reg := validator.NewRegistry()
	validator.RegisterBuiltins(reg)

	engine := append([]formkit.Option{
		formkit.WithConfig(formkit.DefaultConfig()),
		formkit.WithRegistry(reg),
	}, opts...)
	f, err := formhttp.New(signupMarkup, formhttp.WithEngineOptions(engine...))
	require.NoError(t, err)
	return f
}

func post(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func validValues() url.Values {
	return url.Values{
		"username": {"gopher"},
		"email":    {"gopher@example.com"},
		"password": {"secret"},
		"confirm":  {"secret"},
		"topics":   {"go", "web"},
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := formhttp.New(`<div><input name="a"></div>`)
	require.NoError(t, err)

	_, err = formhttp.New(`<html><frameset></frameset></html>`)
	assert.ErrorIs(t, err, formhttp.ErrInvalidMarkup)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid submission", func(t *testing.T) {
		t.Parallel()
		res, err := newForm(t).Validate(post(validValues()))
		require.NoError(t, err)

		assert.True(t, res.Valid())
		assert.Equal(t, "gopher", res.Value("username"))
		assert.Equal(t, []string{"go", "web"}, res.Value("topics"))
	})

	t.Run("failures per field", func(t *testing.T) {
		t.Parallel()
		values := validValues()
		values.Set("email", "not-an-email")
		values.Set("confirm", "other")
		values.Del("topics")

		res, err := newForm(t).Validate(post(values))
		require.NoError(t, err)

		assert.False(t, res.Valid())
		assert.Equal(t, map[string]string{
			"email":   "Provide a valid e-mail",
			"confirm": "Values do not match",
			"topics":  "Field is required",
		}, res.Errors.Map())
		assert.Equal(t, []string{"email", "confirm", "topics"}, res.Errors.Fields())
	})

	t.Run("omitted checkboxes are cleared", func(t *testing.T) {
		t.Parallel()
		res, err := newForm(t).Validate(post(validValues()))
		require.NoError(t, err)

		terms := res.Document.Query(func(e *dom.Element) bool { return e.Name() == "terms" })
		require.Len(t, terms, 1)
		assert.False(t, terms[0].Checked())

		action := res.Document.Query(func(e *dom.Element) bool { return e.Name() == "action" })
		require.Len(t, action, 1)
		assert.Equal(t, "signup", action[0].Value())
	})

	t.Run("rule faults are returned", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("lookup failed")
		reg := validator.NewRegistry()
		reg.Register("required", func(context.Context, any, []any, validator.Context) (string, error) {
			return "", boom
		})
		f, err := formhttp.New(signupMarkup, formhttp.WithEngineOptions(
			formkit.WithConfig(formkit.DefaultConfig()),
			formkit.WithRegistry(reg),
		))
		require.NoError(t, err)

		_, err = f.Validate(post(validValues()))
		assert.ErrorIs(t, err, boom)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader("%zz"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		_, err := newForm(t).Validate(req)
		assert.ErrorIs(t, err, formhttp.ErrParseRequest)
	})
}

func TestRespond(t *testing.T) {
	t.Parallel()

	invalid := func(t *testing.T) *formhttp.Result {
		t.Helper()
		values := validValues()
		values.Set("email", "")
		res, err := newForm(t).Validate(post(values))
		require.NoError(t, err)
		require.False(t, res.Valid())
		return res
	}

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		res := invalid(t)
		w := httptest.NewRecorder()

		require.NoError(t, formhttp.Respond(w, post(nil), res))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

		var body formhttp.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, body.Valid)
		require.NotNil(t, body.Error)
		assert.Equal(t, "validation_error", body.Error.Code)
		assert.Equal(t, map[string][]string{"email": {"Field is required"}}, body.Error.Details)
	})

	t.Run("json success", func(t *testing.T) {
		t.Parallel()
		res, err := newForm(t).Validate(post(validValues()))
		require.NoError(t, err)
		w := httptest.NewRecorder()

		require.NoError(t, formhttp.Respond(w, post(nil), res))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"valid":true}`, w.Body.String())
	})

	t.Run("htmx", func(t *testing.T) {
		t.Parallel()
		res := invalid(t)
		req := post(nil)
		req.Header.Set(formhttp.HXRequest, "true")
		w := httptest.NewRecorder()

		require.NoError(t, formhttp.Respond(w, req, res))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "outerHTML", w.Header().Get(formhttp.HXReswap))
		body := w.Body.String()
		assert.True(t, strings.HasPrefix(body, `<form id="signup"`))
		assert.Contains(t, body, `data-error-for="email"`)
		assert.Contains(t, body, `Field is required</span>`)
		assert.Contains(t, body, `value="gopher"`)
	})

	t.Run("datastar", func(t *testing.T) {
		t.Parallel()
		res := invalid(t)
		req := post(nil)
		req.Header.Set("Accept", formhttp.DataStarAcceptHeader)
		w := httptest.NewRecorder()

		require.NoError(t, formhttp.Respond(w, req, res))
		assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")
		body := w.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "selector #signup")
		assert.Contains(t, body, "datastar-patch-signals")
		assert.Contains(t, body, `"formErrors":{"email":"Field is required"}`)
	})
}

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		headers  map[string]string
		query    string
		expected bool
	}{
		{"SSE Accept header", map[string]string{"Accept": "text/html, text/event-stream"}, "", true},
		{"DataStar query parameter", nil, `?datastar={"count":1}`, true},
		{"DataStar content type", map[string]string{"Content-Type": "application/x-datastar"}, "", true},
		{"Regular request", map[string]string{"Accept": "text/html"}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test"+tt.query, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, formhttp.IsDataStar(req))
		})
	}
}

func TestIsHTMX(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, formhttp.IsHTMX(req))
	req.Header.Set(formhttp.HXRequest, "true")
	assert.True(t, formhttp.IsHTMX(req))
}
