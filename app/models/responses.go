package models

import (
	"github.com/LevanSamadashvili/BitcoinWallet/app/core/status"
)

// Response is the envelope every use case returns. A non-success status
// code always carries a nil Content.
type Response struct {
	StatusCode status.Code
	Content    interface{}
}
