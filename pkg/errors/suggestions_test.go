package errors_test

import (
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/docket/pkg/errors"
)

func TestSuggestionGenerator_EveryCategoryHasSuggestions(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	gen := errors.NewSuggestionGenerator()

	for _, category := range []errors.ErrorCategory{
		errors.CategoryCopy,
		errors.CategoryDiskSpace,
		errors.CategoryInvalidName,
		errors.CategoryPath,
		errors.CategoryPermission,
		errors.CategoryUnknown,
		errors.ErrorCategory("unheard-of"),
	} {
		g.Expect(gen.Generate(category, "")).ShouldNot(BeEmpty(), "category %s", category)
	}
}

func TestSuggestionGenerator_MentionsPath(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	gen := errors.NewSuggestionGenerator()
	path := "/srv/Licitacoes/02. FEVEREIRO"

	for _, category := range []errors.ErrorCategory{
		errors.CategoryDiskSpace,
		errors.CategoryInvalidName,
		errors.CategoryPath,
		errors.CategoryPermission,
		errors.CategoryUnknown,
	} {
		g.Expect(gen.Generate(category, path)).Should(ContainElement(ContainSubstring(path)), "category %s", category)
	}
}

func TestSuggestionGenerator_EmptyPath(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	suggestions := errors.NewSuggestionGenerator().Generate(errors.CategoryPermission, "")

	for _, s := range suggestions {
		g.Expect(s).ShouldNot(ContainSubstring("  "))
	}
}
