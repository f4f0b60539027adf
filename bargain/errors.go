package bargain

import "errors"

var (
	ErrSessionComplete = errors.New("negotiation already complete")
	ErrInvalidOffer    = errors.New("offer must be a positive amount")
)

type InvalidConfigError string

func (e InvalidConfigError) Error() string { return "invalid config: " + string(e) }
