package response

import "SproutAI/app/common/consts/errno"

type Response struct {
	StatusCode int    `json:"code"`
	StatusMsg  string `json:"msg"`
}

type ResponseWithData struct {
	StatusCode int    `json:"code"`
	StatusMsg  string `json:"msg"`
	Data       any    `json:"data"`
}

func NewResponse(statusCode int, statusMsg string) Response {
	return Response{
		StatusCode: statusCode,
		StatusMsg:  statusMsg,
	}
}

func NewResponseWithData(statusCode int, statusMsg string, data any) ResponseWithData {
	return ResponseWithData{
		StatusCode: statusCode,
		StatusMsg:  statusMsg,
		Data:       data,
	}
}

// OK wraps a payload in the success envelope.
func OK(data any) ResponseWithData {
	return NewResponseWithData(errno.StatusOK, "ok", data)
}
