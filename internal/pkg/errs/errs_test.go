//go:build unit

package errs_test

import (
	"fmt"
	"testing"

	"campuscoffee/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	sentinel := errs.New("pos not found")

	t.Run("matches a marked error", func(t *testing.T) {
		err := errs.Mark(errs.New("row missing"), sentinel)
		assert.True(t, errs.Is(err, sentinel))
	})

	t.Run("matches a mark through wrap layers", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(errs.New("row missing"), sentinel), "load pos")
		assert.True(t, errs.Is(err, sentinel))
	})

	t.Run("matches plain sentinel chains", func(t *testing.T) {
		err := fmt.Errorf("load pos: %w", sentinel)
		assert.True(t, errs.Is(err, sentinel))
	})

	t.Run("does not match unrelated errors", func(t *testing.T) {
		err := errs.Mark(errs.New("row missing"), errs.New("user not found"))
		assert.False(t, errs.Is(err, sentinel))
	})

	t.Run("marking a nil error yields the mark itself", func(t *testing.T) {
		err := errs.Mark(nil, sentinel)
		assert.True(t, errs.Is(err, sentinel))
	})
}
