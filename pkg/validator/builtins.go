package validator

// RegisterBuiltins binds the bundled rules to r under their conventional names.
func RegisterBuiltins(r *Registry) {
	for name, fn := range map[string]Func{
		"required":  Required,
		"email":     Email,
		"date":      Date,
		"phone":     Phone,
		"instagram": Instagram,
		"url":       URL,
		"uuid":      UUID,
		"alpha":     Alpha,
		"alpha_num": AlphaNum,
		"slug":      Slug,
		"numeric":   Numeric,
		"integer":   Integer,
		"min":       MinLen,
		"max":       MaxLen,
		"between":   Between,
		"min_value": MinValue,
		"max_value": MaxValue,
		"in":        In,
		"not_in":    NotIn,
		"same":      Same,
		"different": Different,
		"accepted":  Accepted,
	} {
		r.Register(name, fn)
	}
}
