package models

type Outcome struct {
	ID  string
	Err error
}

func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

// Summary is derived once per batch run. Failed keeps the input order of
// the items; it is empty iff every item succeeded. Cleanup carries the
// post-batch cleanup failure, if any, and never affects OK.
type Summary struct {
	Kind    Kind
	Total   int
	Failed  []Outcome
	Cleanup *Outcome
}

func (s *Summary) OK() bool {
	return len(s.Failed) == 0
}

func (s *Summary) FailedIDs() []string {
	ids := make([]string, 0, len(s.Failed))
	for _, o := range s.Failed {
		ids = append(ids, o.ID)
	}
	return ids
}

func (s *Summary) Succeeded() int {
	return s.Total - len(s.Failed)
}

// Merge folds consecutive batches of one flow into a single summary.
func Merge(kind Kind, parts ...*Summary) *Summary {
	merged := &Summary{Kind: kind}
	for _, p := range parts {
		if p == nil {
			continue
		}
		merged.Total += p.Total
		merged.Failed = append(merged.Failed, p.Failed...)
		if merged.Cleanup == nil {
			merged.Cleanup = p.Cleanup
		}
	}
	return merged
}
