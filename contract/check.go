package contract

import (
	"reflect"
	"strconv"
)

func check[T any](c *Checker, kind CheckKind, value T, predicate func(T) bool, message string) T {
	if predicate == nil {
		c.fail(&Violation{Kind: KindRequire, Message: "predicate must not be nil"})
	}
	c.evaluate(predicate(value), func() error {
		return &Violation{Kind: kind, Message: message}
	})
	return value
}

func checkNotNil[T any](c *Checker, kind CheckKind, value T, name string) T {
	return check(c, kind, value, func(v T) bool {
		return !isNil(v)
	}, name+" must not be nil")
}

func checkNotNilAll(c *Checker, kind CheckKind, values []any) {
	for i, v := range values {
		checkNotNil(c, kind, v, "value["+strconv.Itoa(i)+"]")
	}
}

func checkNotEmpty(c *Checker, kind CheckKind, text, name string) string {
	return check(c, kind, text, IsNonEmpty, name+" must not be nil nor empty")
}

func checkNotEmptyCollection[S ~[]E, E any](c *Checker, kind CheckKind, collection S, name string) S {
	checkNotNil(c, kind, collection, name)
	return check(c, kind, collection, func(s S) bool {
		return len(s) > 0
	}, name+" must not be nil nor empty collection")
}

func checkNotEmptyMap[M ~map[K]V, K comparable, V any](c *Checker, kind CheckKind, m M, name string) M {
	checkNotNil(c, kind, m, name)
	return check(c, kind, m, func(m M) bool {
		return len(m) > 0
	}, name+" must not be nil nor empty map")
}

func nameOr(names []string, defaultName string) string {
	if len(names) > 0 && len(names[0]) > 0 {
		return names[0]
	}
	return defaultName
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
