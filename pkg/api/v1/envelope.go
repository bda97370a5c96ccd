// Package v1 содержит типы HTTP API сервиса управления пользователями:
// единый конверт ответа и представления записей пользователей.
package v1

import "encoding/json"

// Envelope - единый формат ответа API.
// Успех: {statusCode, message, data}. Ошибка: {statusCode, message, error}.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Success создает конверт успешного ответа. Поле data присутствует
// в успешном ответе всегда: операции без полезной нагрузки отдают
// явный null, а не опускают поле.
func Success(data any, message string) Envelope {
	if data == nil {
		data = json.RawMessage("null")
	}
	return Envelope{
		StatusCode: 200,
		Message:    message,
		Data:       data,
	}
}

// Failure создает конверт ответа с ошибкой.
func Failure(statusCode int, message, errText string) Envelope {
	if errText == "" {
		errText = message
	}
	return Envelope{
		StatusCode: statusCode,
		Message:    message,
		Error:      errText,
	}
}
