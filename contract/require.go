package contract

// RequireNotNil panics with a [*Violation] if value is nil, and returns it otherwise.
// Nil means a nil interface, or a nil pointer, map, slice, channel, or function.
// An optional name may be given to identify the value in the failure message, it defaults to "value".
//
//	db = contract.RequireNotNil(db, "db")
func RequireNotNil[T any](value T, name ...string) T {
	return checkNotNil(defaultChecker, KindRequire, value, nameOr(name, "value"))
}

// RequireNotNilAll checks each value in order, and panics on the first one that's nil.
func RequireNotNilAll(values ...any) {
	checkNotNilAll(defaultChecker, KindRequire, values)
}

// RequireNotEmpty panics if text is empty or only whitespace.
// The original, untrimmed text is returned.
func RequireNotEmpty(text string, name ...string) string {
	return checkNotEmpty(defaultChecker, KindRequire, text, nameOr(name, "value"))
}

// RequireNotEmptyCollection panics if the slice is nil or has no elements.
func RequireNotEmptyCollection[S ~[]E, E any](collection S, name ...string) S {
	return checkNotEmptyCollection(defaultChecker, KindRequire, collection, nameOr(name, "collection"))
}

// RequireNotEmptyMap panics if the map is nil or has no entries.
func RequireNotEmptyMap[M ~map[K]V, K comparable, V any](m M, name ...string) M {
	return checkNotEmptyMap(defaultChecker, KindRequire, m, nameOr(name, "map"))
}

// Require panics if predicate returns false for value, using message verbatim as the failure detail.
// The value is returned unchanged otherwise.
func Require[T any](value T, predicate func(T) bool, message string) T {
	return check(defaultChecker, KindRequire, value, predicate, message)
}
