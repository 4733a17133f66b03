package config

import "errors"

// ErrInvalidAdapterConfigs indicates invalid client adapter settings (for
// example, a missing backend address or a negative request timeout).
var ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
