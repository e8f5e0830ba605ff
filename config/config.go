package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/a-peyrard/jscollections/fn"
	"github.com/a-peyrard/jscollections/option"
	"github.com/a-peyrard/jscollections/reflectutils"
	"github.com/a-peyrard/jscollections/str"
	"github.com/spf13/viper"
)

type (
	Options struct {
		prefix string
	}

	WithDefault interface {
		ApplyDefault()
	}
)

func WithEnvPrefix(prefix string) option.Option[Options] {
	return func(opts *Options) {
		opts.prefix = prefix
	}
}

// Load reads a configuration struct from the environment.
//
// Every leaf field is bound to an env var named after its path (mapstructure tag or field name,
// in screaming snake case) and prefixed by the env prefix. Nil struct pointers are allocated and
// WithDefault implementations get their defaults applied once the values are read.
func Load[T any](opts ...option.Option[Options]) (*T, error) {
	options := option.Build(&Options{}, opts...)

	v := viper.New()
	v.SetEnvPrefix(options.prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var vT T
	bindEnvs(v, options.prefix, reflect.TypeOf(vT))

	if err := v.Unmarshal(&vT); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}

	withDefaultValueType := reflect.TypeOf((*WithDefault)(nil)).Elem()
	callApplyDefault := func(val reflect.Value, typ reflect.Type, _ []string) {
		if !typ.Implements(withDefaultValueType) || !val.IsValid() {
			return
		}
		if val.Kind() == reflect.Pointer && val.IsNil() {
			return
		}
		val.Interface().(WithDefault).ApplyDefault()
	}
	reflectutils.WalkStruct(
		&vT,
		fn.AllTriConsumer(
			reflectutils.CreateNilStructs,
			callApplyDefault,
		),
	)

	return &vT, nil
}

func bindEnvs(v *viper.Viper, envPrefix string, typ reflect.Type, parts ...string) {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, ok := field.Tag.Lookup("mapstructure")
		if !ok {
			name = field.Name
		}

		fieldType := field.Type
		if fieldType.Kind() == reflect.Pointer {
			fieldType = fieldType.Elem()
		}
		if fieldType.Kind() == reflect.Struct {
			bindEnvs(v, envPrefix, fieldType, append(parts, name)...)
			continue
		}

		path := append(parts, name)
		_ = v.BindEnv(strings.Join(path, "."), str.EnvName(envPrefix, path...))
	}
}
