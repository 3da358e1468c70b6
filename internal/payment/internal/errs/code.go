package errs

var (
	SystemError      = ErrorCode{Code: 504001, Msg: "system error"}
	InvalidSignature = ErrorCode{Code: 504002, Msg: "invalid webhook signature"}
	PaymentNotFound  = ErrorCode{Code: 504003, Msg: "payment not found"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
