// Package formkit validates HTML forms declaratively.
//
// Controls opt in with a name and a rule chain attribute:
//
//	<form>
//	  <input name="email" data-rules="required|email">
//	  <input name="password" type="password" data-rules="required|min:8">
//	  <input name="confirm" type="password" data-rules="same:@password">
//	</form>
//
// A FormValidation binds to the form of a dom.Document, groups its controls by
// name, keeps the groups up to date while controls are inserted and removed,
// and evaluates rule chains on demand:
//
//	doc, _ := dom.ParseString(markup)
//	fv, err := formkit.New(doc,
//		formkit.OnFieldError(func(t fields.Target, msg string) { ... }),
//	)
//	if err != nil {
//		return err
//	}
//	defer fv.Destroy(false)
//
//	ok, err := fv.IsFormValid(ctx)
//
// # Rule chains
//
// A chain is a list of rules separated by "|". A rule is a name optionally
// followed by ":" and comma-separated parameters. A parameter starting with
// "@" is replaced by the current value of the named field. Rules run in
// order and the first failure wins; unknown rule names are skipped.
//
// Rules come from a validator.Registry, validator.Default unless WithRegistry
// is given. Their messages are localized through a messages.Catalog.
//
// # Error display
//
// Every group gets an error marker, a <span> placed after its last member
// that receives the failure message. Invalid members carry the error state
// class (has-error by default).
//
// # Concurrency
//
// A FormValidation is safe for concurrent use, but validation calls are meant
// to run one at a time: rules of a field and fields of a form are evaluated
// sequentially. Calls wait for pending structural changes to be applied
// before reading the field groups. Destroying an engine while a validation
// call is in flight is not supported.
package formkit
