package safe

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mctl/pkg/domain/types/apperr"
	"github.com/sourcegraph/conc/panics"
)

// Try runs fn and converts a panic into an error carrying the recovered value and stack
func Try(fn func() error) error {
	var (
		catcher panics.Catcher
		err     error
	)
	catcher.Try(func() {
		err = fn()
	})

	if r := catcher.Recovered(); r != nil {
		return goerr.New("recovered from panic",
			goerr.V("recover", r.Value),
			goerr.V("stack", string(r.Stack)),
			goerr.T(apperr.ErrTagInternal),
		)
	}
	return err
}
