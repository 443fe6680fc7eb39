// Package lookup provides validation rules that consult Redis, such as
// checking that a username or e-mail address is not taken yet.
//
// Taken values are kept in Redis sets. The "available" rule fails when the
// field value is a member of the set:
//
//	client, err := lookup.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	lookup.Register(validator.Default, client, "taken:usernames")
//
// The set can be chosen per field with a parameter:
//
//	<input name="email" data-rules="required|email|available:taken:emails">
//
// Redis errors are faults of the validation call, not failure messages.
package lookup
