package serverutils

// BaseResponse is the envelope every JSON endpoint returns.
type BaseResponse[T any] struct {
	Success      bool   `json:"success"`
	Code         int    `json:"code"`
	Message      string `json:"message"`
	Data         T      `json:"data,omitempty"`
	DeletedCount *int64 `json:"deleted_count,omitempty"`
}

func SuccessResponse[T any](message string, data T) BaseResponse[T] {
	return BaseResponse[T]{
		Success: true,
		Code:    200,
		Message: message,
		Data:    data,
	}
}

// DeletedResponse reports how many rows a bulk delete removed.
func DeletedResponse(message string, count int64) BaseResponse[any] {
	return BaseResponse[any]{
		Success:      true,
		Code:         200,
		Message:      message,
		DeletedCount: &count,
	}
}

func ErrorResponse(code int, message string) BaseResponse[any] {
	return BaseResponse[any]{
		Success: false,
		Code:    code,
		Message: message,
	}
}
