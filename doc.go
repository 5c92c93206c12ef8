/*
Package samplekit is a small fixture library: int32 arithmetic and an
in-memory user registry, used as a target for linting and CI tooling.

Packages:
  - calculator: Add, Subtract, Multiply and Divide over int32, wrapping on overflow
  - userservice: id to display name registry with upsert, lookup, count and clear
  - datastore: generic RWMutex-guarded in-memory store backing the registry
  - errors: semantic error types such as ErrDivisionByZero
  - config: YAML, env file and environment configuration
  - logging: log/slog construction

Basic Usage:

	kit, err := samplekit.Open("samplekit.yaml", os.Stderr, ".env")
	if err != nil {
	    return err
	}
	kit.Users.AddUser("1", "Alice")
	fmt.Println(kit.Users.FormatGreeting("1", ""))

	q, err := calculator.Divide(10, 3)
*/
package samplekit
