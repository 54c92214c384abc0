package blob

import (
	"fmt"

	"github.com/arloliu/colvec/internal/options"
)

type builderConfig struct {
	dictThreshold int
	parallel      bool
}

// BuilderOption configures a Builder.
type BuilderOption = options.Option[*builderConfig]

// WithDictThreshold sets the maximum distinct-value count at which string
// columns switch to dictionary encoding. Zero selects DefaultDictThreshold
// per column; a negative value makes NewBuilder return an error.
func WithDictThreshold(n int) BuilderOption {
	return options.New(func(cfg *builderConfig) error {
		if n < 0 {
			return fmt.Errorf("dictionary threshold must not be negative, got %d", n)
		}
		cfg.dictThreshold = n

		return nil
	})
}

// WithParallelEncoding encodes columns concurrently in Finish, one encoder
// per goroutine.
func WithParallelEncoding(enabled bool) BuilderOption {
	return options.NoError(func(cfg *builderConfig) {
		cfg.parallel = enabled
	})
}
