package conform

// Reserved messages a validator can report instead of user-facing text.
const (
	// MessageSkipped suppresses the error of the field it is reported on.
	MessageSkipped = "__skipped__"
	// MessageUndefined suppresses the error state of the whole submission.
	MessageUndefined = "__undefined__"
)

func isSkipped(message string) bool {
	return message == MessageSkipped
}

func isUndefined(message string) bool {
	return message == MessageUndefined
}
