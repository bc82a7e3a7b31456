package model

// BulkScope selects the entity family a bulk action applies to.
type BulkScope string

const (
	BulkScopeProducts BulkScope = "products"
	BulkScopeOrders   BulkScope = "orders"
)

// BulkAction names an operation applied to many entities at once.
type BulkAction string

const (
	BulkActionActivate       BulkAction = "activate"
	BulkActionDeactivate     BulkAction = "deactivate"
	BulkActionDelete         BulkAction = "delete"
	BulkActionMarkProcessing BulkAction = "mark_processing"
	BulkActionMarkShipped    BulkAction = "mark_shipped"
	BulkActionMarkDelivered  BulkAction = "mark_delivered"
	BulkActionExportSelected BulkAction = "export_selected"
)

// BulkActionRequest is constructed per call and never persisted.
type BulkActionRequest struct {
	Scope     BulkScope
	Action    BulkAction
	TargetIDs []int64
	AdminID   int64
}

// BulkResult reports the outcome of a committed bulk action.
type BulkResult struct {
	Scope       BulkScope
	Action      BulkAction
	Affected    int64
	AffectedIDs []int64
	Message     string
}
