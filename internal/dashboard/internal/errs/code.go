package errs

var (
	SystemError = ErrorCode{Code: 506001, Msg: "system error"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
