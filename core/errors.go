package core

import "errors"

var (
	ErrInsufficientData = errors.New("t-test needs at least 2 returns")
	ErrDegenerateInput  = errors.New("t-statistic undefined, returns have zero mean and zero variance")
	ErrNonFiniteValue   = errors.New("returns must be finite")
)
