package backoffice

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeEnvelope_HTTPFailure(t *testing.T) {
	// тело при не-2xx не разбирается вовсе
	out := DecodeEnvelope(502, "502 Bad Gateway", []byte(`{"ResponseCode":200,"Response":[]}`))
	assert.Equal(t, StatusTransportError, out.Status)
	assert.Contains(t, out.Message, "502")

	var te *TransportError
	assert.True(t, errors.As(out.Err(), &te))
}

func TestDecodeEnvelope_Ok(t *testing.T) {
	out := DecodeEnvelope(200, "200 OK", []byte(`{"ResponseCode":200,"Response":[{"Id":1}]}`))
	assert.Equal(t, StatusOk, out.Status)
	assert.JSONEq(t, `[{"Id":1}]`, string(out.Payload))
	assert.NoError(t, out.Err())
}

func TestDecodeEnvelope_NotFound(t *testing.T) {
	out := DecodeEnvelope(200, "200 OK", []byte(`{"ResponseCode":404,"Message":"no rows"}`))
	assert.Equal(t, StatusNotFound, out.Status)
	assert.ErrorIs(t, out.Err(), ErrNotFound)
}

func TestDecodeEnvelope_AppError(t *testing.T) {
	t.Run("with message", func(t *testing.T) {
		out := DecodeEnvelope(200, "200 OK", []byte(`{"ResponseCode":500,"Message":"duplicate client"}`))
		assert.Equal(t, StatusAppError, out.Status)
		assert.Equal(t, "duplicate client", out.Message)
	})

	t.Run("without message", func(t *testing.T) {
		out := DecodeEnvelope(200, "200 OK", []byte(`{"ResponseCode":500}`))
		assert.Equal(t, StatusAppError, out.Status)
		assert.Equal(t, "request failed (code 500)", out.Message)
	})
}

func TestDecodeEnvelope_UnparsableBodyOn2xx(t *testing.T) {
	// мутационные эндпоинты иногда отвечают пустым телом при успехе
	for _, body := range [][]byte{nil, {}, []byte("not json at all")} {
		out := DecodeEnvelope(200, "200 OK", body)
		assert.Equal(t, StatusOk, out.Status)
		assert.Equal(t, "{}", string(out.Payload))
	}
}
