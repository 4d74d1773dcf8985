package m68k

import (
	"errors"
	"fmt"
)

// Sentinel errors for construction-time and loader-time failures. These are
// ordinary Go errors, distinct from architectural exceptions: the latter
// never leave the core (see exception.go), these are for problems the
// embedder made before a single instruction ran.
var (
	ErrNilBus        = errors.New("m68k: bus must not be nil")
	ErrBadVariant    = errors.New("m68k: unrecognized CPU variant")
	ErrImageTooLarge = errors.New("m68k: program image exceeds addressable range")
	ErrMisaligned    = errors.New("m68k: load address must be word-aligned")
)

func wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)
}
