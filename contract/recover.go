package contract

// Recover converts a contract failure panic into an error, and must be called directly with defer.
// Any other panic, including an [*UnsupportedTypeError], is re-panicked unchanged.
//
//	func Process(items []Item) (err error) {
//		defer contract.Recover(&err)
//		contract.RequireNotEmptyCollection(items, "items")
//		...
//	}
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if err, ok := r.(error); ok && IsViolation(err) {
		if errp != nil {
			*errp = err
		}
		return
	}
	panic(r)
}
