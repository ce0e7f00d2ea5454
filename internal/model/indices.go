package model

// MajorIndex maps a human-readable index name to its fetch symbol.
type MajorIndex struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// MajorIndices is the fixed set of indices a user can include in a
// comparison, in the order presented by the frontend selector.
var MajorIndices = []MajorIndex{
	{Name: "S&P 500", Symbol: "^GSPC"},
	{Name: "Dow Jones", Symbol: "^DJI"},
	{Name: "Nasdaq 100", Symbol: "^NDX"},
	{Name: "Russell 2000", Symbol: "^RUT"},
	{Name: "FTSE 100", Symbol: "^FTSE"},
}

// LookupMajorIndex resolves an index display name to its entry in
// MajorIndices. The second return value is false for unknown names.
func LookupMajorIndex(name string) (MajorIndex, bool) {
	for _, idx := range MajorIndices {
		if idx.Name == name {
			return idx, true
		}
	}
	return MajorIndex{}, false
}
