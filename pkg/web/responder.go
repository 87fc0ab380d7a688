package web

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/pkg/errors"

	"github.com/LevanSamadashvili/BitcoinWallet/pkg/log"
	"github.com/LevanSamadashvili/BitcoinWallet/pkg/response"
)

type webError struct {
	Code    int         `json:"code,omitempty"`
	Message interface{} `json:"message,omitempty"`
}

type webErrorResponse struct {
	Error *webError `json:"error,omitempty"`
}

// RenderError renders a transport-level error in JSON format.
func RenderError(w http.ResponseWriter, r *http.Request, err error) {
	log.AddFields(r.Context(), "error", err.Error()) // log the rendered error

	// prepare the error to render
	webErr := &webError{Message: err.Error()}

	cause := errors.Cause(err)
	respErr, ok := cause.(*response.Error)
	if ok {
		webErr.Code = respErr.Code
		webErr.Message = respErr.Message
		if respErr.Internal != nil { // log the internal error
			log.AddFields(r.Context(), "internal", respErr.Internal.Error())
		}
	}

	render.Status(r, http.StatusBadRequest) // default status for errors
	render.JSON(w, r, &webErrorResponse{Error: webErr})
}

// RenderResult renders a payload with an explicit http status code.
func RenderResult(w http.ResponseWriter, r *http.Request, httpStatus int, result interface{}) {
	render.Status(r, httpStatus)
	render.JSON(w, r, result)
}
