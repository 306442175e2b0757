package stripprefix

import (
	"errors"
	"fmt"
	"strings"

	ferrors "github.com/vexyart/stripprefix/internal/foundation/errors"
)

// Sentinel errors. Both are returned wrapped in a *ferrors.ClassifiedError.
var (
	// ErrInvalidPattern indicates the configured prefix pattern does not compile.
	ErrInvalidPattern = errors.New("invalid prefix pattern")

	// ErrDestinationCollision indicates distinct sources share a clean destination
	// while strict mode is on.
	ErrDestinationCollision = errors.New("destination collision")

	// ErrInvalidOptions indicates the raw plugin options could not be decoded.
	ErrInvalidOptions = errors.New("invalid plugin options")
)

func invalidPatternError(pattern string, cause error) error {
	return ferrors.WrapError(fmt.Errorf("%w: %w", ErrInvalidPattern, cause), ferrors.CategoryConfig,
		fmt.Sprintf("invalid regex pattern '%s'", pattern)).
		Fatal().
		UserAction().
		WithContext("pattern", pattern).
		Build()
}

func invalidOptionsError(cause error) error {
	return ferrors.WrapError(fmt.Errorf("%w: %w", ErrInvalidOptions, cause), ferrors.CategoryConfig,
		"invalid strip-number-prefix options").
		Fatal().
		UserAction().
		Build()
}

// collisionMessage names the destination and every source claiming it.
func collisionMessage(c Collision) string {
	return fmt.Sprintf("multiple files would map to '%s': %s", c.Destination, strings.Join(c.Sources, ", "))
}

func destinationCollisionError(collisions []Collision) error {
	msgs := make([]string, len(collisions))
	for i, c := range collisions {
		msgs[i] = collisionMessage(c)
	}
	first := collisions[0]
	return ferrors.WrapError(ErrDestinationCollision, ferrors.CategoryValidation, strings.Join(msgs, "; ")).
		Fatal().
		UserAction().
		WithContext("destination", first.Destination).
		WithContext("sources", first.Sources).
		WithContext("collisions", len(collisions)).
		Build()
}
