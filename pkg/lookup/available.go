package lookup

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// RuleName is the name Register binds the rule to.
const RuleName = "available"

// SetChecker is the part of a Redis client the rule needs.
type SetChecker interface {
	SIsMember(ctx context.Context, key string, member any) *redis.BoolCmd
}

// Available returns a rule that fails with "Value is already taken" when the
// value is a member of a Redis set. The set is the first rule parameter, or
// defaultSet without one. Empty values pass; list values fail when any item
// is taken.
func Available(client SetChecker, defaultSet string) validator.Func {
	return func(ctx context.Context, value any, params []any, vc validator.Context) (string, error) {
		key := defaultSet
		if len(params) > 0 {
			if s, ok := params[0].(string); ok && s != "" {
				key = s
			}
		}
		if key == "" {
			return "", ErrMissingKey
		}

		for _, member := range validator.Strings(value) {
			taken, err := client.SIsMember(ctx, key, member).Result()
			if err != nil {
				return "", errors.Join(ErrLookupFailed, err)
			}
			if taken {
				return vc.Message("validation.available", "Value is already taken", nil), nil
			}
		}
		return "", nil
	}
}

// Register binds Available to RuleName in reg.
func Register(reg *validator.Registry, client SetChecker, defaultSet string) {
	reg.Register(RuleName, Available(client, defaultSet))
}
