package responses

type UpsertUser struct {
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
	Token         string `json:"token"`
}

type AdminCheck struct {
	Admin bool `json:"admin"`
}

type PromoteAdmin struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}
