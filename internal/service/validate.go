package service

// rule pairs a predicate with the message returned when it fails.
// Rules run in declaration order and the first failure wins; errors are not
// aggregated.
type rule struct {
	ok      func() bool
	message string
}

// firstFailure evaluates rules in order and returns the message of the first
// rule that fails, or "" if all pass.
func firstFailure(rules []rule) string {
	for _, r := range rules {
		if !r.ok() {
			return r.message
		}
	}
	return ""
}

// present builds a rule requiring a non-empty value.
func present(value, message string) rule {
	return rule{ok: func() bool { return value != "" }, message: message}
}
