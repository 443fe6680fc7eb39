package formhttp

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/goccy/go-json"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/formkit/pkg/dom"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// ErrorsSignal is the DataStar signal that receives the failure messages.
const ErrorsSignal = "formErrors"

// Response is the JSON body written for plain requests.
type Response struct {
	Valid bool         `json:"valid"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail lists failure messages per field.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

// Respond writes res in the format the client of r expects.
//
// DataStar requests receive the re-rendered form, morphed in place, and the
// messages in the ErrorsSignal signal. HTMX requests receive the form markup
// with an outerHTML swap. Other requests receive a Response as JSON with
// status 422 when the submission failed.
func Respond(w http.ResponseWriter, r *http.Request, res *Result) error {
	var err error
	switch {
	case IsDataStar(r):
		err = respondDataStar(w, r, res)
	case IsHTMX(r):
		err = respondHTMX(w, res)
	default:
		err = respondJSON(w, res)
	}
	if err != nil {
		return errors.Join(ErrWriteResponse, err)
	}
	return nil
}

func respondDataStar(w http.ResponseWriter, r *http.Request, res *Result) error {
	form := res.Document.Form()
	sse := datastar.NewSSE(w, r)
	if err := sse.PatchElementTempl(component(form),
		datastar.WithSelector(selector(form)),
		datastar.WithMode(datastar.ElementPatchModeOuter),
	); err != nil {
		return err
	}

	data, err := json.Marshal(map[string]any{ErrorsSignal: res.Errors.Map()})
	if err != nil {
		return err
	}
	return sse.PatchSignals(data)
}

func respondHTMX(w http.ResponseWriter, res *Result) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set(HXReswap, "outerHTML")
	w.WriteHeader(status(res))
	return res.Document.Form().Render(w)
}

func respondJSON(w http.ResponseWriter, res *Result) error {
	body := Response{Valid: res.Valid()}
	if !body.Valid {
		body.Error = detail(res.Errors)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status(res))
	return json.NewEncoder(w).Encode(body)
}

func status(res *Result) int {
	if res.Valid() {
		return http.StatusOK
	}
	return http.StatusUnprocessableEntity
}

func detail(errs validator.ValidationErrors) *ErrorDetail {
	d := &ErrorDetail{
		Code:    "validation_error",
		Message: errs.Error(),
		Details: make(map[string][]string, len(errs)),
	}
	for _, e := range errs {
		d.Details[e.Field] = append(d.Details[e.Field], e.Message)
	}
	return d
}

// selector addresses the form on the client page.
func selector(form *dom.Element) string {
	if id := form.GetAttr("id"); id != "" {
		return "#" + id
	}
	if name := form.GetAttr("name"); name != "" {
		return `form[name="` + name + `"]`
	}
	return "form"
}

func component(e *dom.Element) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return e.Render(w)
	})
}
