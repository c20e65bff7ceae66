package backoffice

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Status classifies a decoded back-office response.
type Status int

const (
	// StatusOk — envelope ResponseCode 200, payload is usable.
	StatusOk Status = iota
	// StatusNotFound — envelope ResponseCode 404. Пустой результат, не ошибка.
	StatusNotFound
	// StatusAppError — HTTP успешен, но конверт сигнализирует бизнес-ошибку.
	StatusAppError
	// StatusTransportError — не-2xx HTTP статус либо сетевая ошибка.
	StatusTransportError
)

// Outcome is the decoded result of one back-office call.
type Outcome struct {
	Status  Status
	Payload json.RawMessage // valid only for StatusOk
	Message string          // AppError/TransportError detail
}

// envelope mirrors the remote {ResponseCode, Response, Message} wrapper.
type envelope struct {
	ResponseCode int             `json:"ResponseCode"`
	Response     json.RawMessage `json:"Response"`
	Message      string          `json:"Message"`
}

// ErrNotFound reports a 404-classified outcome to callers that branch on it.
var ErrNotFound = errors.New("record not found")

// AppError — бизнес-ошибка удалённого API при успешном HTTP-статусе.
type AppError struct {
	Message string
}

func (e *AppError) Error() string { return "backoffice: " + e.Message }

// TransportError — сбой на уровне HTTP/сети: не-2xx статус, таймаут, обрыв.
type TransportError struct {
	StatusCode int // 0 если до HTTP-статуса не дошло
	Detail     string
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("backoffice: http %d: %s", e.StatusCode, e.Detail)
	}
	return "backoffice: " + e.Detail
}

// DecodeEnvelope interprets a raw HTTP result into an Outcome.
// Body parsing is skipped entirely for non-2xx statuses. A 2xx status with
// an unparsable body decodes as Ok with an empty payload: some mutation
// endpoints return empty bodies on success.
func DecodeEnvelope(statusCode int, statusText string, body []byte) Outcome {
	if statusCode < 200 || statusCode > 299 {
		return Outcome{
			Status:  StatusTransportError,
			Message: fmt.Sprintf("%d %s", statusCode, statusText),
		}
	}

	var env envelope
	if len(body) == 0 || json.Unmarshal(body, &env) != nil {
		return Outcome{Status: StatusOk, Payload: json.RawMessage(`{}`)}
	}

	switch env.ResponseCode {
	case 200:
		payload := env.Response
		if len(payload) == 0 {
			payload = json.RawMessage(`{}`)
		}
		return Outcome{Status: StatusOk, Payload: payload}
	case 404:
		return Outcome{Status: StatusNotFound}
	default:
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("request failed (code %d)", env.ResponseCode)
		}
		return Outcome{Status: StatusAppError, Message: msg}
	}
}

// Err converts a non-Ok outcome into the matching error value; Ok yields nil.
func (o Outcome) Err() error {
	switch o.Status {
	case StatusOk:
		return nil
	case StatusNotFound:
		return ErrNotFound
	case StatusAppError:
		return &AppError{Message: o.Message}
	default:
		return &TransportError{Detail: o.Message}
	}
}
