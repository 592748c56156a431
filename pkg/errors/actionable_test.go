package errors_test

import (
	stderrors "errors"
	"io/fs"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/docket/pkg/errors"
)

func TestActionableError_FormatSuggestionsWithEmptySuggestions(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	err := errors.NewActionableError("unknown error", errors.CategoryUnknown, []string{}, "/path")

	g.Expect(errors.FormatSuggestions(err)).Should(BeEmpty())
}

func TestActionableError_FormatSuggestionsWithMultipleSuggestions(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	err := errors.NewActionableError(
		"permission denied",
		errors.CategoryPermission,
		[]string{"primeira", "segunda", "terceira"},
		"/path/to/file",
	)

	g.Expect(errors.FormatSuggestions(err)).Should(Equal("  • primeira\n  • segunda\n  • terceira"))
}

func TestActionableError_FormatSuggestionsWithNonActionableError(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(errors.FormatSuggestions(nil)).Should(BeEmpty())
	g.Expect(errors.FormatSuggestions(stderrors.New("plain"))).Should(BeEmpty())
}

func TestActionableError_Accessors(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	err := errors.NewActionableError(
		"no space left on device",
		errors.CategoryDiskSpace,
		[]string{"Libere espaço"},
		"/dev/sda1",
	)

	g.Expect(err.Error()).Should(Equal("no space left on device"))
	g.Expect(err.OriginalError()).Should(Equal("no space left on device"))
	g.Expect(err.Category()).Should(Equal(errors.CategoryDiskSpace))
	g.Expect(err.Suggestions()).Should(ConsistOf("Libere espaço"))
	g.Expect(err.AffectedPath()).Should(Equal("/dev/sda1"))
}

func TestActionableError_KeepsCauseChain(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	cause := errors.NewFilesystemError("copy", "/dest/proposta.pdf", fs.ErrPermission)
	enriched := errors.NewEnricher().Enrich(cause, "")

	g.Expect(stderrors.Is(enriched, fs.ErrPermission)).Should(BeTrue())

	var fsErr *errors.FilesystemError
	g.Expect(stderrors.As(enriched, &fsErr)).Should(BeTrue())
	g.Expect(fsErr.Op).Should(Equal("copy"))
}

func TestErrorCategory_CategoriesAreDistinct(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	categories := []errors.ErrorCategory{
		errors.CategoryCopy,
		errors.CategoryDiskSpace,
		errors.CategoryInvalidName,
		errors.CategoryPath,
		errors.CategoryPermission,
		errors.CategoryUnknown,
	}

	seen := make(map[errors.ErrorCategory]bool)
	for _, category := range categories {
		g.Expect(seen).ShouldNot(HaveKey(category))
		seen[category] = true
	}
}
