package contract

// The Ensure family mirrors the Require family, but states postconditions.
// A failure panics with a [*Violation] that wraps [ErrEnsureViolation].

// EnsureNotNil is the postcondition form of [RequireNotNil].
//
//	return contract.EnsureNotNil(conn, "conn"), nil
func EnsureNotNil[T any](value T, name ...string) T {
	return checkNotNil(defaultChecker, KindEnsure, value, nameOr(name, "value"))
}

func EnsureNotNilAll(values ...any) {
	checkNotNilAll(defaultChecker, KindEnsure, values)
}

func EnsureNotEmpty(text string, name ...string) string {
	return checkNotEmpty(defaultChecker, KindEnsure, text, nameOr(name, "value"))
}

func EnsureNotEmptyCollection[S ~[]E, E any](collection S, name ...string) S {
	return checkNotEmptyCollection(defaultChecker, KindEnsure, collection, nameOr(name, "collection"))
}

func EnsureNotEmptyMap[M ~map[K]V, K comparable, V any](m M, name ...string) M {
	return checkNotEmptyMap(defaultChecker, KindEnsure, m, nameOr(name, "map"))
}

// Ensure panics if predicate returns false for value, and returns value otherwise.
func Ensure[T any](value T, predicate func(T) bool, message string) T {
	return check(defaultChecker, KindEnsure, value, predicate, message)
}
