package core

import (
	"context"

	"github.com/LevanSamadashvili/BitcoinWallet/app/core/status"
	"github.com/LevanSamadashvili/BitcoinWallet/app/models"
)

// step is a single link of a use-case pipeline. A step either produces a
// final response, short-circuiting the pipeline, or returns nil to pass
// control to the next step. Validation steps return nil on success; the
// last step of every chain is expected to produce a response.
type step func(ctx context.Context) *models.Response

// chain is an ordered pipeline of steps. The ordering of the steps is the
// whole contract of a use case: no step after a failing one runs.
type chain []step

func (c chain) run(ctx context.Context) models.Response {
	for _, s := range c {
		if resp := s(ctx); resp != nil {
			return *resp
		}
	}
	return models.Response{} // nothing produced a response
}

func succeed(code status.Code, content interface{}) *models.Response {
	return &models.Response{StatusCode: code, Content: content}
}

// fail carries no content: a non-success status always renders an empty payload.
func fail(code status.Code) *models.Response {
	return &models.Response{StatusCode: code}
}
