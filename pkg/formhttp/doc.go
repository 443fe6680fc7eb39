// Package formhttp validates submitted HTML forms on the server with the
// same markup and rule chains the page declares.
//
// A Form parses its markup once. Every Validate call builds a fresh document,
// copies the posted values into it and runs the form validation engine:
//
//	signup, err := formhttp.New(signupMarkup,
//		formhttp.WithEngineOptions(formkit.WithRegistry(rules)),
//	)
//	if err != nil {
//		return err
//	}
//
//	func handle(w http.ResponseWriter, r *http.Request) {
//		res, err := signup.Validate(r)
//		if err != nil {
//			http.Error(w, err.Error(), http.StatusBadRequest)
//			return
//		}
//		if !res.Valid() {
//			_ = formhttp.Respond(w, r, res)
//			return
//		}
//		// persist res.Values(...)
//	}
//
// Respond answers in the format the client expects. DataStar requests get
// the re-rendered form and an errors signal over server-sent events, HTMX
// requests get the form markup, and any other request gets a JSON body.
package formhttp
