package errorx

import "errors"

// 定义业务错误
var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrValidation       = errors.New("validation failed")
	ErrUnknownAction    = errors.New("unknown bulk action")
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrInvalidPriority  = errors.New("priority level must be between 1 and 5")
)

// BusinessError 业务错误结构
type BusinessError struct {
	Code    int
	Message string
	Details []ErrorDetail
}

// ErrorDetail 错误详情
type ErrorDetail struct {
	Path string
	Info string
}

// Error 实现 error 接口
func (e *BusinessError) Error() string {
	return e.Message
}

// NewBusinessError 创建业务错误
func NewBusinessError(code int, message string) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
	}
}
