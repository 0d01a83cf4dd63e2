// Package utils provides common utility functions for the reach-estimator application.
// It includes loose type conversions used when reading Graph API payloads, whose
// numeric fields may arrive as floats, strings or json.Number values.
package utils
