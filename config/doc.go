// Package config loads the visualizer settings from YAML, validates them,
// watches the file for edits and builds the zap logger.
//
// Loading order, lowest to highest priority:
//
//  1. Defaults (Default)
//  2. The YAML file given to Load
//  3. PATHVIZ_* environment variables
//
// The admissible weight is clamped to 1 outside [1,100] before validation,
// matching what the search package does with WithAdmissibleWeight.
package config
