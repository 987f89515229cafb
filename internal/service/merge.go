package service

import (
	"math"
	"strings"
)

// mergeString overwrites dst when v is present and not blank
func mergeString(dst *string, v *string) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return
	}
	*dst = *v
}

// mergeFloat overwrites dst when v is present and a number
func mergeFloat(dst *float64, v *float64) {
	if v == nil || math.IsNaN(*v) {
		return
	}
	*dst = *v
}
