package errs

var (
	SystemError         = ErrorCode{Code: 501001, Msg: "system error"}
	DuplicateEmailError = ErrorCode{Code: 501002, Msg: "email already registered"}
	InvalidCredentials  = ErrorCode{Code: 501003, Msg: "invalid email or password"}
	InvalidInput        = ErrorCode{Code: 501004, Msg: "invalid input"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
