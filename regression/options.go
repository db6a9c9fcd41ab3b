package regression

import (
	"fmt"

	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/internal/options"
)

// DegeneratePolicy selects how Fit treats a zero-variance column.
type DegeneratePolicy int

const (
	// PolicyFail makes Fit return errs.ErrDegenerateInput when x or y has zero
	// variance. This is the default.
	PolicyFail DegeneratePolicy = iota
	// PolicyPropagate evaluates the formulas directly and lets the zero
	// divisions produce IEEE-754 NaN in the returned Model.
	PolicyPropagate
)

var policyNames = map[DegeneratePolicy]string{
	PolicyFail:      "fail",
	PolicyPropagate: "propagate",
}

// String returns the string representation of the policy.
func (p DegeneratePolicy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}

	return "unknown"
}

const (
	defaultFormulaPrecision = 2
	maxFormulaPrecision     = 10
)

// FitConfig holds the settings applied by Fit.
type FitConfig struct {
	Policy           DegeneratePolicy
	FormulaPrecision int
}

func defaultFitConfig() FitConfig {
	return FitConfig{
		Policy:           PolicyFail,
		FormulaPrecision: defaultFormulaPrecision,
	}
}

// FitOption is a functional option for FitConfig.
type FitOption = options.Option[*FitConfig]

// WithDegeneratePolicy sets how zero-variance columns are handled.
func WithDegeneratePolicy(policy DegeneratePolicy) FitOption {
	return options.New(func(cfg *FitConfig) error {
		if _, ok := policyNames[policy]; !ok {
			return fmt.Errorf("%w: unknown degenerate policy %d", errs.ErrInvalidInput, int(policy))
		}
		cfg.Policy = policy

		return nil
	})
}

// WithFormulaPrecision sets the number of decimals used in Model.Formula.
// Valid values are 0 through 10.
func WithFormulaPrecision(digits int) FitOption {
	return options.New(func(cfg *FitConfig) error {
		if digits < 0 || digits > maxFormulaPrecision {
			return fmt.Errorf("%w: formula precision %d out of range [0, %d]",
				errs.ErrInvalidInput, digits, maxFormulaPrecision)
		}
		cfg.FormulaPrecision = digits

		return nil
	})
}
