package iterview

import "go.llib.dev/frameless/pkg/errorkit"

// ErrInvalidArgument is reported when a view is constructed with parameters it can't iterate with.
const ErrInvalidArgument errorkit.Error = "invalid argument"
