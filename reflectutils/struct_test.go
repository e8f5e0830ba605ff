package reflectutils

import (
	"reflect"
	"strings"
	"testing"

	"github.com/a-peyrard/jscollections/fn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	TestSettings struct {
		Compat *CompatTestSettings
		Log    *LogTestSettings
		Name   string
	}
	TestSettingsWithPrivate struct {
		Compat  *CompatTestSettings
		Log     *LogTestSettings
		private *LogTestSettings
		Name    string
	}
	CompatTestSettings struct {
		TruthyLookup bool
	}
	LogTestSettings struct {
		Level string
	}
	WithDefault interface {
		ApplyDefault()
	}
)

func (c *TestSettings) ApplyDefault() {
	if c.Name == "" {
		c.Name = "hello world"
	}
}

func (c *LogTestSettings) ApplyDefault() {
	if c.Level == "" {
		c.Level = "info"
	}
}

var withDefaultValueType = reflect.TypeOf((*WithDefault)(nil)).Elem()

func callApplyDefault(val reflect.Value, typ reflect.Type, _ []string) {
	if typ.Implements(withDefaultValueType) && val.IsValid() && !val.IsNil() {
		val.Interface().(WithDefault).ApplyDefault()
	}
}

func TestWalkStruct(t *testing.T) {
	t.Run("it should apply consumer on all fields", func(t *testing.T) {
		// WHEN
		element := &TestSettings{
			Compat: &CompatTestSettings{},
			Log:    &LogTestSettings{},
		}
		WalkStruct(element, callApplyDefault)

		// THEN
		assert.Equal(t, "hello world", element.Name)
		assert.Equal(t, "info", element.Log.Level)
	})

	t.Run("it should give the path of each field", func(t *testing.T) {
		// GIVEN
		var paths []string
		collect := func(_ reflect.Value, _ reflect.Type, path []string) {
			paths = append(paths, strings.Join(path, "."))
		}

		// WHEN
		WalkStruct(&TestSettings{Log: &LogTestSettings{}}, collect)

		// THEN
		assert.Equal(t, []string{"", "Compat", "Log", "Log.Level", "Name"}, paths)
	})

	t.Run("it should allow to initialize sub structs", func(t *testing.T) {
		// WHEN
		element := &TestSettings{}
		WalkStruct(element, CreateNilStructs)

		// THEN
		assert.Equal(t, "", element.Name)
		require.NotNil(t, element.Compat)
		assert.False(t, element.Compat.TruthyLookup)
		require.NotNil(t, element.Log)
		assert.Equal(t, "", element.Log.Level)
	})

	t.Run("it should ignore private fields when initializing sub structs", func(t *testing.T) {
		// WHEN
		element := &TestSettingsWithPrivate{}
		WalkStruct(element, CreateNilStructs)

		// THEN
		require.NotNil(t, element.Compat)
		require.NotNil(t, element.Log)
		assert.Nil(t, element.private)
	})

	t.Run("it should deref pointer of interfaces", func(t *testing.T) {
		// WHEN
		element := &TestSettingsWithPrivate{}
		var iface any = element
		var ptrIface any = &iface
		WalkStruct(ptrIface, CreateNilStructs)

		// THEN
		require.NotNil(t, element.Compat)
		require.NotNil(t, element.Log)
		assert.Nil(t, element.private)
	})

	t.Run("it should allow to initialize sub structs and also apply default", func(t *testing.T) {
		// WHEN
		element := &TestSettings{}
		WalkStruct(element, fn.AllTriConsumer(CreateNilStructs, callApplyDefault))

		// THEN
		assert.Equal(t, "hello world", element.Name)
		require.NotNil(t, element.Log)
		assert.Equal(t, "info", element.Log.Level)
	})

	t.Run("it should not recurse on invalid ref", func(t *testing.T) {
		// GIVEN
		type Foo struct {
			Bar string
		}
		type Test struct {
			Foo *Foo
		}

		visited := 0
		nilFoo := func(val reflect.Value, typ reflect.Type, path []string) {
			visited++
			if strings.Contains(typ.String(), "Foo") {
				val.Set(reflect.Zero(typ))
			}
		}

		// WHEN
		element := &Test{Foo: &Foo{Bar: "hello"}}
		WalkStruct(element, nilFoo)

		// THEN
		assert.Nil(t, element.Foo)
		assert.Equal(t, 2, visited)
	})
}

func TestFields(t *testing.T) {
	t.Run("it should list exported fields in declaration order", func(t *testing.T) {
		// GIVEN
		type Point struct {
			X      int
			Y      int
			hidden string
			Label  string
		}

		// WHEN
		fields := Fields(Point{X: 1, Y: 2, hidden: "no", Label: "origin"})

		// THEN
		assert.Equal(t, []Field{
			{Name: "X", Value: 1},
			{Name: "Y", Value: 2},
			{Name: "Label", Value: "origin"},
		}, fields)
	})

	t.Run("it should honor the js tag", func(t *testing.T) {
		// GIVEN
		type Tagged struct {
			Foo     string `js:"foo"`
			Skipped string `js:"-"`
			Bar     int    `js:",omitempty"`
		}

		// WHEN
		fields := Fields(&Tagged{Foo: "bar", Skipped: "x", Bar: 3})

		// THEN
		assert.Equal(t, []Field{
			{Name: "foo", Value: "bar"},
			{Name: "Bar", Value: 3},
		}, fields)
	})

	t.Run("it should return nothing for non structs", func(t *testing.T) {
		assert.Empty(t, Fields("foo"))
		assert.Empty(t, Fields(nil))
		assert.Empty(t, Fields([]int{1}))
	})

	t.Run("it should detect structs behind pointers", func(t *testing.T) {
		type Foo struct{}
		foo := &Foo{}

		assert.True(t, IsStruct(foo))
		assert.True(t, IsStruct(&foo))
		assert.False(t, IsStruct((*Foo)(nil)))
		assert.False(t, IsStruct(42))
	})
}
