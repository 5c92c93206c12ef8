/*
Package errors provides semantic error types for samplekit.

Sentinels:

	var (
	    ErrDivisionByZero = errors.New("division by zero")
	    ErrNotFound       = errors.New("entry not found")
	    ErrInvalidInput   = errors.New("invalid input")
	)

Each typed error (DivisionByZeroError, NotFoundError, ValidationError)
matches its sentinel through errors.Is, including when wrapped:

	q, err := calculator.Divide(10, 0)
	if errors.IsDivisionByZero(err) {
	    // q is zero; report and carry on
	}
*/
package errors
