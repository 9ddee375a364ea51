package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil
// validation error, so that validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated constructor.
// Embedding a guard in a struct makes zero-value instances detectable: the flag is
// only set when the object goes through its New* function, so Validate can reject
// structs that were initialized directly.
//
// Example:
//
//	var ErrCommandIsNotConstructed = errors.New("command must be created via its constructor")
//
//	type SomeCommand struct {
//	    guard guard.ConstructorGuard
//	}
//
//	func NewSomeCommand() SomeCommand {
//	    return SomeCommand{guard: guard.NewConstructorGuard()}
//	}
//
//	func (c *SomeCommand) Validate() error {
//	    return c.guard.Validate(ErrCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as properly
// constructed. Call it from the object's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was created through its constructor,
// the provided validationError otherwise. A nil validationError falls back to
// ErrDefaultConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}

	if !g.isConstructed {
		return validationError
	}

	return nil
}
