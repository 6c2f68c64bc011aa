package classifier

import "encoding/json"

// Candidate is the unvalidated classification proposal: an intent label
// and the raw payload exactly as the model emitted it. The validator
// owns turning it into a canonical action.
type Candidate struct {
	Intent string          `json:"intent"`
	Data   json.RawMessage `json:"data"`
}

// Result is the classification outcome. Failed marks a degraded run
// (call failure, empty reply, unparseable JSON); Reason says why.
// Classify never returns an error, callers branch on Failed.
type Result struct {
	Candidate Candidate
	Failed    bool
	Reason    string
}
