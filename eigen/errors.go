package eigen

import "errors"

var (
	// ErrNilOperator indicates a nil Operator was supplied.
	ErrNilOperator = errors.New("eigen: operator is nil")
	// ErrNonSquare indicates the operator is not square.
	ErrNonSquare = errors.New("eigen: operator is not square")
	// ErrInvalidCount indicates a requested eigenpair count outside [1, n).
	ErrInvalidCount = errors.New("eigen: eigenpair count out of range")
	// ErrNotConverged indicates the iteration budget ran out before all
	// requested pairs met the residual tolerance.
	ErrNotConverged = errors.New("eigen: lanczos did not converge within iteration budget")
)
