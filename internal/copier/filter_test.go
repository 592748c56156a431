//nolint:varnamelen // Test files use idiomatic short variable names (t, tt, etc.)
package copier_test

import (
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/docket/internal/copier"
)

func TestGlobFilterInvalidPattern(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(copier.NewGlobFilter("[invalid").ShouldInclude("test.txt")).Should(BeFalse())
}

func TestGlobFilterShouldInclude(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		pattern     string
		file        string
		shouldMatch bool
	}{
		{"empty pattern matches all", "", "proposta.pdf", true},
		{"blank pattern matches all", "  ", "proposta.pdf", true},
		{"extension", "*.docx", "declaracao.docx", true},
		{"extension mismatch", "*.docx", "planilha.xlsx", false},
		{"case insensitive name", "*.docx", "MODELO.DOCX", true},
		{"case insensitive pattern", "*.PDF", "edital.pdf", true},
		{"brace alternatives", "*.{docx,xlsx}", "planilha.xlsx", true},
		{"prefix", "modelo*", "modelo_proposta.docx", true},
		{"prefix mismatch", "modelo*", "proposta.docx", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			g.Expect(copier.NewGlobFilter(tt.pattern).ShouldInclude(tt.file)).Should(Equal(tt.shouldMatch))
		})
	}
}

func TestGlobFilterNilIncludesAll(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var f *copier.GlobFilter
	g.Expect(f.ShouldInclude("x")).Should(BeTrue())
}
