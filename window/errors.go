package window

import (
	"errors"
	"fmt"
)

var errMismatchedLength = errors.New("window: samples and coefficients must have same length")

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window: size must be > 0: %d", size)
	}
	return nil
}

func validateKaiser(size int, beta float64) error {
	if size <= 0 {
		return validateLength(size)
	}
	if beta < 0 {
		return fmt.Errorf("window: kaiser beta must be >= 0: %f", beta)
	}
	return nil
}

func validateTukey(size int, alpha float64) error {
	if size <= 0 {
		return validateLength(size)
	}
	if alpha < 0 || alpha > 1 {
		return fmt.Errorf("window: tukey alpha must be in [0,1]: %f", alpha)
	}
	return nil
}

func validatePlanck(size int, epsilon float64) error {
	if size <= 0 {
		return validateLength(size)
	}
	if epsilon < 0 || epsilon > 0.5 {
		return fmt.Errorf("window: planck epsilon must be in [0,0.5]: %f", epsilon)
	}
	return nil
}
