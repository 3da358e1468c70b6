package errs

var (
	SystemError             = ErrorCode{Code: 503001, Msg: "system error"}
	OrderNotFoundError      = ErrorCode{Code: 503002, Msg: "order not found"}
	InvalidStatusTransition = ErrorCode{Code: 503003, Msg: "order status does not allow this operation"}
	DuplicateRequestError   = ErrorCode{Code: 503004, Msg: "duplicate request"}
	InvalidOrderInput       = ErrorCode{Code: 503005, Msg: "invalid order input"}
	InsufficientStockError  = ErrorCode{Code: 503006, Msg: "insufficient stock"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
