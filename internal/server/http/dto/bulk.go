package dto

// BulkRequest names the action and its targets.
type BulkRequest struct {
	Action string  `json:"action"`
	IDs    []int64 `json:"ids"`
}

// BulkResponse reports a committed bulk action.
type BulkResponse struct {
	Success     bool    `json:"success"`
	Message     string  `json:"message"`
	Scope       string  `json:"scope"`
	Action      string  `json:"action"`
	Affected    int64   `json:"affected"`
	AffectedIDs []int64 `json:"affected_ids,omitempty"`
}
