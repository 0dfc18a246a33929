// Package config holds the settings of the surfaces around the RSA operator.
//
// The operator itself is not configurable; only logging is, and the CLI fills these
// settings from its flags before validating them.
package config
