package api

// Response is the answer to every API request.
type Response struct {
	// OK is false if the request could not be processed.
	OK bool `json:"ok"`

	// Comment describes the outcome of the request.
	Comment string `json:"comment"`

	// Updates contains the DOT renderings of all steps of the operation.
	Updates []string `json:"updates"`
}

const (
	commentInserted    = "inserted"
	commentKeyExists   = "key already exists"
	commentDeleted     = "deleted"
	commentKeyNotFound = "key not found"

	contentTypeGraphviz = "text/vnd.graphviz"
	basicAuthRealm      = "rbviz"
)

// newResponse creates a successful Response. The updates are never nil so that they are encoded as a JSON array.
func newResponse(comment string, updates []string) *Response {
	if updates == nil {
		updates = make([]string, 0)
	}

	return &Response{
		OK:      true,
		Comment: comment,
		Updates: updates,
	}
}
