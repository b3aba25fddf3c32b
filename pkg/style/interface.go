package style

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"

	themeerrors "github.com/alexisbeaulieu97/themestyle/pkg/errors"
)

// Interface is a style backend. Create and Resolve are required; the
// direction-specific members and Flush are optional and fall back to the
// generic members when nil.
type Interface struct {
	Create  CreateFunc  `validate:"required"`
	Resolve ResolveFunc `validate:"required"`

	CreateLTR  CreateFunc
	CreateRTL  CreateFunc
	ResolveLTR ResolveFunc
	ResolveRTL ResolveFunc

	// Flush forces buffered output to be emitted immediately.
	Flush func()
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Validate checks that iface exposes the required capability set.
func Validate(iface *Interface) error {
	if iface == nil {
		return themeerrors.NewInvalidInterfaceError("Interface")
	}

	err := validatorInstance().Struct(iface)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return themeerrors.NewInvalidInterfaceError(fieldErrs[0].Field())
	}
	return err
}

// SelectCreate picks the create function for dir: the direction-specific
// member when present, Create otherwise.
func SelectCreate(dir Direction, iface *Interface) CreateFunc {
	if iface == nil {
		return nil
	}
	switch {
	case dir == RTL && iface.CreateRTL != nil:
		return iface.CreateRTL
	case dir == LTR && iface.CreateLTR != nil:
		return iface.CreateLTR
	default:
		return iface.Create
	}
}

// SelectResolve picks the resolve function for dir using the same rule as SelectCreate.
func SelectResolve(dir Direction, iface *Interface) ResolveFunc {
	if iface == nil {
		return nil
	}
	switch {
	case dir == RTL && iface.ResolveRTL != nil:
		return iface.ResolveRTL
	case dir == LTR && iface.ResolveLTR != nil:
		return iface.ResolveLTR
	default:
		return iface.Resolve
	}
}

// CreateFor is SelectCreate bound to the receiver.
func (i *Interface) CreateFor(dir Direction) CreateFunc {
	return SelectCreate(dir, i)
}

// ResolveFor is SelectResolve bound to the receiver.
func (i *Interface) ResolveFor(dir Direction) ResolveFunc {
	return SelectResolve(dir, i)
}

// FlushBuffered calls Flush when the backend provides one.
func (i *Interface) FlushBuffered() {
	if i == nil || i.Flush == nil {
		return
	}
	i.Flush()
}
