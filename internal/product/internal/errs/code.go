package errs

var (
	SystemError       = ErrorCode{Code: 502001, Msg: "system error"}
	ProductNotFound   = ErrorCode{Code: 502002, Msg: "product not found"}
	DuplicateSKU      = ErrorCode{Code: 502003, Msg: "sku already exists"}
	InvalidProduct    = ErrorCode{Code: 502004, Msg: "invalid product"}
	DuplicateCategory = ErrorCode{Code: 502005, Msg: "category slug already exists"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
