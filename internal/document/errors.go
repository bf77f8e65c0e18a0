package document

type InvalidJSONError struct{}

func (e *InvalidJSONError) Error() string {
	return "input is not a valid JSON document"
}
