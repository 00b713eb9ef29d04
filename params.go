package topple

import (
	"github.com/pkg/errors"
)

// DefaultEpisodes is the self-play budget used when none is configured.
const DefaultEpisodes = 10000

// Params are the configuration options for the temporal-difference
// backup applied during self-play.
type Params struct {
	// Weight of new evidence against the prior estimate, in (0, 1].
	LearningRate float64
	// Weight of the anticipated future value, in [0, 1].
	Discount float64
}

// DefaultParams returns the reference learning rate and discount.
func DefaultParams() Params {
	return Params{
		LearningRate: 0.8,
		Discount:     0.5,
	}
}

// Validate returns an error wrapping ErrInvalidParams if p is out of range.
func (p Params) Validate() error {
	if !(p.LearningRate > 0 && p.LearningRate <= 1) {
		return errors.Wrapf(ErrInvalidParams, "learning rate must be in (0, 1], got %v", p.LearningRate)
	}

	if !(p.Discount >= 0 && p.Discount <= 1) {
		return errors.Wrapf(ErrInvalidParams, "discount must be in [0, 1], got %v", p.Discount)
	}

	return nil
}
