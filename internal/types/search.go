package types

// SearchFilters are hard predicates applied after scoring; a job failing any
// active filter is excluded regardless of score.
type SearchFilters struct {
	RemoteOnly   bool     `json:"remote_only,omitempty"`
	BeginnerOnly bool     `json:"beginner_only,omitempty"`
	HasStipend   bool     `json:"has_stipend,omitempty"`
	Location     string   `json:"location,omitempty"`
	Sectors      []string `json:"sectors,omitempty"`
}

// Active reports whether any filter is set.
func (f SearchFilters) Active() bool {
	return f.RemoteOnly || f.BeginnerOnly || f.HasStipend || f.Location != "" || len(f.Sectors) > 0
}

// SearchResult is one scored hit from the semantic search engine.
// MatchedFields records, per expanded query term, which posting fields the
// term matched in, for highlighting.
type SearchResult struct {
	Job           JobPosting          `json:"job"`
	Score         float64             `json:"score"`
	MatchedFields map[string][]string `json:"matched_fields,omitempty"`
}

// QueryIntent classifies what a free-text query is asking for.
type QueryIntent string

// Query intents derived by the natural-language query parser.
const (
	IntentSearch QueryIntent = "search"
	IntentBrowse QueryIntent = "browse"
	IntentFilter QueryIntent = "filter"
)

// ParsedQuery is the advisory output of the natural-language query parser:
// residual search terms, derived filters, and an intent classification. The
// parser never executes scoring itself.
type ParsedQuery struct {
	Terms   []string      `json:"terms"`
	Filters SearchFilters `json:"filters"`
	Intent  QueryIntent   `json:"intent"`
}
