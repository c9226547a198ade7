package allocation

import "errors"

// Engine failure taxonomy. All engine errors wrap one of these sentinels so
// callers can branch with errors.Is.
var (
	// ErrInvalidInput covers malformed requests: negative amounts,
	// out-of-range rates or correlations, non-positive asset volatility,
	// unnamed or duplicated assets. Never worth retrying.
	ErrInvalidInput = errors.New("invalid allocation input")

	// ErrUnachievableVolatility means a non-zero risk target was requested
	// with no variance source available to hit it.
	ErrUnachievableVolatility = errors.New("unachievable target volatility")

	// ErrDegenerateSharpeWeights means positive Sharpe ratios cancelled to
	// exactly zero, leaving no way to normalize basket weights.
	ErrDegenerateSharpeWeights = errors.New("degenerate sharpe ratio weights")
)
