package notion

import (
	"github.com/tidwall/gjson"
)

// PageError records a result page that could not be extracted.
type PageError struct {
	ID  string
	Err error
}

func (e PageError) Error() string {
	return "page " + e.ID + ": " + e.Err.Error()
}

func (e PageError) Unwrap() error {
	return e.Err
}

// Database is one page of results from a database query.
type Database struct {
	Pages      []*Page
	Failures   []PageError
	NextCursor string
	HasMore    bool
}

var _ decoder = (*Database)(nil)

// FromJSON extracts every result page. A page that fails extraction is recorded in Failures and
// does not affect the others.
func (d *Database) FromJSON(node gjson.Result) error {
	results := node.Get("results")
	if !results.IsArray() {
		return missingField("results")
	}

	out := Database{
		NextCursor: optionalString(node, "next_cursor"),
		HasMore:    node.Get("has_more").Bool(),
	}
	for _, result := range results.Array() {
		page := new(Page)
		if err := page.FromJSON(result); err != nil {
			out.Failures = append(out.Failures, PageError{ID: optionalString(result, "id"), Err: err})
			continue
		}
		out.Pages = append(out.Pages, page)
	}

	*d = out
	return nil
}
