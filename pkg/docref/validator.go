package docref

import (
	"context"
	stderrors "errors"

	"github.com/matzehuels/spdxlens/pkg/errors"
	"github.com/matzehuels/spdxlens/pkg/httputil"
)

// Checker performs the blocking existence check for one URL. The HTTP client
// in pkg/httputil satisfies this; tests use counting fakes.
type Checker interface {
	Check(ctx context.Context, url string) error
}

// NopChecker accepts every URL without any network call. It backs the
// offline rendering mode.
type NopChecker struct{}

// Check always succeeds.
func (NopChecker) Check(context.Context, string) error { return nil }

// Validator confirms documentation URLs, remembering those already confirmed
// so each distinct URL costs at most one network call per render. State is
// scoped to one render; there is no retry policy and no recovery: any
// failure other than a cache hit is terminal for the run.
type Validator struct {
	checker Checker
	checked map[string]struct{}
}

// NewValidator creates a Validator around the given checker.
func NewValidator(checker Checker) *Validator {
	return &Validator{
		checker: checker,
		checked: make(map[string]struct{}),
	}
}

// Confirm checks that url exists. Already-confirmed URLs succeed without a
// network call. A 404 becomes a LINK_NOT_FOUND error naming the URL; any
// other failure becomes LINK_TRANSPORT with the cause wrapped unmodified.
func (v *Validator) Confirm(ctx context.Context, url string) error {
	if _, ok := v.checked[url]; ok {
		return nil
	}
	if err := v.checker.Check(ctx, url); err != nil {
		if stderrors.Is(err, httputil.ErrNotFound) {
			return errors.Wrap(errors.ErrCodeLinkNotFound, err, "documentation URL %s does not exist", url)
		}
		return errors.Wrap(errors.ErrCodeLinkTransport, err, "validate %s", url)
	}
	v.checked[url] = struct{}{}
	return nil
}

// Checked returns the number of distinct URLs confirmed so far.
func (v *Validator) Checked() int { return len(v.checked) }
