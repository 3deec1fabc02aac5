package configuration

import (
	"reflect"
	"strings"
	"time"
	"unicode"

	"github.com/spf13/cast"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/rbviz/ierrors"
)

// boundParameter stores the pointer and the type of values that were bound using the BindParameters function.
type boundParameter struct {
	boundPointer any
	boundType    reflect.Type
}

var (
	boolType        = reflect.TypeOf(false)
	durationType    = reflect.TypeOf(time.Duration(0))
	float64Type     = reflect.TypeOf(float64(0))
	intType         = reflect.TypeOf(0)
	int64Type       = reflect.TypeOf(int64(0))
	uintType        = reflect.TypeOf(uint(0))
	stringType      = reflect.TypeOf("")
	stringSliceType = reflect.TypeOf([]string{})
)

// BindParameters defines a flag for every field of the struct that pointerToStruct points to and remembers the field
// so that UpdateBoundParameters can write the loaded value back into it.
//
// The parameter names are determined by the lower camel cased names of the fields, prefixed with the namespace. They
// can be overridden by a name tag. The default value is the current value of the field unless a default tag is
// present, and the usage information is taken from the usage tag. Nested structs are translated into nested
// namespaces (--level1.level2.parameterName).
func (c *Configuration) BindParameters(flagSet *flag.FlagSet, namespace string, pointerToStruct any) {
	val := reflect.ValueOf(pointerToStruct).Elem()
	for i := 0; i < val.NumField(); i++ {
		valueField := val.Field(i)
		typeField := val.Type().Field(i)

		name := namespace + "."
		if tagName, exists := typeField.Tag.Lookup("name"); exists {
			name += tagName
		} else {
			name += lowerCamelCase(typeField.Name)
		}

		if valueField.Kind() == reflect.Struct {
			c.BindParameters(flagSet, name, valueField.Addr().Interface())

			continue
		}

		shortHand := typeField.Tag.Get("shorthand")
		usage := typeField.Tag.Get("usage")
		tagDefault, hasTagDefault := typeField.Tag.Lookup("default")

		switch valueField.Type() {
		case boolType:
			flagSet.BoolVarP(pointerTo[bool](valueField), name, shortHand, defaultValue(valueField, tagDefault, hasTagDefault, cast.ToBoolE), usage)
		case durationType:
			flagSet.DurationVarP(pointerTo[time.Duration](valueField), name, shortHand, defaultValue(valueField, tagDefault, hasTagDefault, cast.ToDurationE), usage)
		case float64Type:
			flagSet.Float64VarP(pointerTo[float64](valueField), name, shortHand, defaultValue(valueField, tagDefault, hasTagDefault, cast.ToFloat64E), usage)
		case intType:
			flagSet.IntVarP(pointerTo[int](valueField), name, shortHand, defaultValue(valueField, tagDefault, hasTagDefault, cast.ToIntE), usage)
		case int64Type:
			flagSet.Int64VarP(pointerTo[int64](valueField), name, shortHand, defaultValue(valueField, tagDefault, hasTagDefault, cast.ToInt64E), usage)
		case uintType:
			flagSet.UintVarP(pointerTo[uint](valueField), name, shortHand, defaultValue(valueField, tagDefault, hasTagDefault, cast.ToUintE), usage)
		case stringType:
			flagSet.StringVarP(pointerTo[string](valueField), name, shortHand, defaultValue(valueField, tagDefault, hasTagDefault, cast.ToStringE), usage)
		case stringSliceType:
			flagSet.StringSliceVarP(pointerTo[[]string](valueField), name, shortHand, defaultValue(valueField, tagDefault, hasTagDefault, func(value any) ([]string, error) {
				return strings.Split(cast.ToString(value), ","), nil
			}), usage)
		default:
			panic(ierrors.Errorf("unsupported parameter type %s of %s", valueField.Type(), name))
		}

		c.boundParameters[strings.ToLower(name)] = &boundParameter{
			boundPointer: valueField.Addr().Interface(),
			boundType:    valueField.Type(),
		}
	}
}

// UpdateBoundParameters updates parameters that were bound using the BindParameters method with the current values in
// the configuration.
func (c *Configuration) UpdateBoundParameters() {
	for parameterName, parameter := range c.boundParameters {
		if !c.config.Exists(parameterName) {
			continue
		}

		//nolint:forcetypeassert // the pointer types are determined by the bound types
		switch parameter.boundType {
		case boolType:
			*(parameter.boundPointer.(*bool)) = c.Bool(parameterName)
		case durationType:
			*(parameter.boundPointer.(*time.Duration)) = c.Duration(parameterName)
		case float64Type:
			*(parameter.boundPointer.(*float64)) = c.Float64(parameterName)
		case intType:
			*(parameter.boundPointer.(*int)) = c.Int(parameterName)
		case int64Type:
			*(parameter.boundPointer.(*int64)) = c.Int64(parameterName)
		case uintType:
			*(parameter.boundPointer.(*uint)) = cast.ToUint(c.config.Get(parameterName))
		case stringType:
			*(parameter.boundPointer.(*string)) = c.String(parameterName)
		case stringSliceType:
			*(parameter.boundPointer.(*[]string)) = c.Strings(parameterName)
		}
	}
}

// pointerTo returns the address of the field as a typed pointer.
func pointerTo[T any](field reflect.Value) *T {
	//nolint:forcetypeassert // the callers match T with the type of the field
	return field.Addr().Interface().(*T)
}

// defaultValue returns the parsed default tag if it exists or the current value of the field otherwise.
func defaultValue[T any](field reflect.Value, tagDefault string, hasTagDefault bool, parse func(any) (T, error)) T {
	if !hasTagDefault {
		//nolint:forcetypeassert // the callers match T with the type of the field
		return field.Interface().(T)
	}

	parsed, err := parse(tagDefault)
	if err != nil {
		panic(ierrors.Wrapf(err, "invalid default value %q", tagDefault))
	}

	return parsed
}

func lowerCamelCase(str string) string {
	runes := []rune(str)
	runeCount := len(runes)

	if runeCount == 0 || unicode.IsLower(runes[0]) {
		return str
	}

	runes[0] = unicode.ToLower(runes[0])
	if runeCount == 1 || unicode.IsLower(runes[1]) {
		return string(runes)
	}

	for i := 1; i < runeCount; i++ {
		if i+1 < runeCount && unicode.IsLower(runes[i+1]) {
			break
		}

		runes[i] = unicode.ToLower(runes[i])
	}

	return string(runes)
}
