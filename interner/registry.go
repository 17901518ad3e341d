// Package interner is a registry of hstr.Interner implementations,
// so that an interner, or a chain of them, can be built from configuration.
//
// A configuration is a map with a "type" key naming a registered factory.
// The other keys are parameters for that factory.
// Wrapping types take the configuration of the interner they wrap
// in a "nested" parameter.
package interner

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/bobg/hstr"
)

// Factory creates an interner from its configuration.
type Factory func(context.Context, map[string]interface{}) (hstr.Interner, error)

var registry = make(map[string]Factory)

// Register makes a Factory available under the given type name.
func Register(key string, f Factory) {
	registry[key] = f
}

// Create creates an interner of the given type.
func Create(ctx context.Context, key string, conf map[string]interface{}) (hstr.Interner, error) {
	f, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("key %s not found in registry", key)
	}
	return f(ctx, conf)
}

// FromConfig creates an interner from a configuration that names its own type.
func FromConfig(ctx context.Context, conf map[string]interface{}) (hstr.Interner, error) {
	typ, ok := conf["type"].(string)
	if !ok {
		return nil, errors.New(`missing "type" parameter`)
	}
	return Create(ctx, typ, conf)
}

// Nested creates the interner described by the "nested" parameter of conf.
func Nested(ctx context.Context, conf map[string]interface{}) (hstr.Interner, error) {
	nested, ok := conf["nested"].(map[string]interface{})
	if !ok {
		return nil, errors.New(`missing "nested" parameter`)
	}
	in, err := FromConfig(ctx, nested)
	return in, errors.Wrap(err, "creating nested interner")
}

// Int gets an integer parameter from conf,
// or def if it is absent.
func Int(conf map[string]interface{}, key string, def int) (int, error) {
	v, ok := conf[key]
	if !ok {
		return def, nil
	}
	switch v := v.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("parameter %q is not an integer", key)
		}
		return int(v), nil
	}
	return 0, fmt.Errorf("parameter %q has type %T, want integer", key, v)
}

func init() {
	Register("scope", func(_ context.Context, conf map[string]interface{}) (hstr.Interner, error) {
		capacity, err := Int(conf, "capacity", 0)
		if err != nil {
			return nil, err
		}
		return hstr.NewScopeWithCapacity(capacity), nil
	})
	Register("shards", func(context.Context, map[string]interface{}) (hstr.Interner, error) {
		return hstr.NewShards(), nil
	})
	Register("global", func(context.Context, map[string]interface{}) (hstr.Interner, error) {
		return hstr.Global(), nil
	})
}
