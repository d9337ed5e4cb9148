// Package triage provides functionality for prioritizing submitted cases.
// It maps report categories to the weights used to order the officer's queue.
package triage

import "aegiswhistle/backend/internal/config"

// GetWeight returns the priority weight for a given report category.
// It returns 0 if the category is not recognized.
func GetWeight(category string) int {
	return config.CategoryWeights[category]
}
