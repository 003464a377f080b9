package logging

// Standardized field names for structured logging.
const (
	FieldCurrency      = "currency"
	FieldRate          = "rate"
	FieldRateOrigin    = "rate_origin"
	FieldSearchDate    = "search_date"
	FieldTransactionID = "transaction_id"
	FieldCategory      = "category"
	FieldKind          = "kind"
	FieldAmount        = "amount"
	FieldBackend       = "backend"
	FieldKey           = "key"
	FieldOperation     = "operation"
	FieldStatus        = "status"
	FieldError         = "error"
	FieldDuration      = "duration_ms"
	FieldCount         = "count"
	FieldOutputFile    = "output_file"
)
