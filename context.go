package formkit

// fieldContext is the validator.Context handed to rules.
type fieldContext struct {
	fv   *FormValidation
	name string
}

func (c *fieldContext) FieldName() string {
	return c.name
}

func (c *fieldContext) FieldValue(name string) any {
	return c.fv.store.FieldValue(name)
}

func (c *fieldContext) Message(key, fallback string, values map[string]any) string {
	return c.fv.catalog.Message(c.fv.language, key, fallback, values)
}
