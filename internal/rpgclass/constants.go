package rpgclass

// Error messages
const (
	ErrMsgClassNameRequired = "class name must not be blank"
	ErrMsgItemNameRequired  = "starting item name must not be blank"
)

// Log messages
const (
	LogMsgClassCreated       = "Class created"
	LogMsgClassUpdated       = "Class updated"
	LogMsgClassDeleted       = "Class deleted"
	LogMsgBatchEntryDropped  = "Batch class update skipped unknown class"
	LogMsgBatchUpdated       = "Batch class update saved"
	LogMsgCatalogLoaded      = "Class catalog loaded"
	LogMsgCatalogClassExists = "Catalog class already present, skipping"
	LogMsgCatalogSynced      = "Class catalog synced"
	LogErrFailedToSaveClass  = "Failed to save class"
)
