package errs

var (
	SystemError = ErrorCode{Code: 505001, Msg: "internal error"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
