package schema_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/docket/internal/schema"
)

func TestFolderSchema_Paths(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	s := schema.FolderSchema{
		schema.Dir("b", schema.Dir("b2"), schema.Dir("b1")),
		schema.Dir("a"),
	}

	g.Expect(s.Paths()).Should(Equal([]string{"b", "b/b2", "b/b1", "a"}))
	g.Expect(s.Count()).Should(Equal(4))
}

func TestClientStructure(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	s := schema.ClientStructure()
	paths := s.Paths()

	g.Expect(s).Should(HaveLen(7))
	g.Expect(paths[0]).Should(Equal("00. Editais_ANALISAR"))
	g.Expect(paths).Should(ContainElement("01. Licitacao/01. Participar/12. DEZEMBRO"))
	g.Expect(paths).Should(ContainElement("01. Licitacao/05. Modelos_Padrao/PLANILHA"))
	g.Expect(paths).Should(ContainElement("02. Empresa/20. Inscricao_Municipal"))
	g.Expect(paths).Should(ContainElement("06. Biblioteca/04. Modelos_Administrativos/04. Esclarecimento"))

	// 7 top-level + 5 under Licitacao + 12 months + 3 models + 20 company
	// + 7 technical + 4 library + 4 administrative models
	g.Expect(s.Count()).Should(Equal(62))

	// Each call yields an independent value.
	s[0].Name = "changed"
	g.Expect(schema.ClientStructure()[0].Name).Should(Equal("00. Editais_ANALISAR"))
}

func TestBidSubfolders(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(schema.BidSubfolders).Should(HaveLen(11))

	for _, rel := range schema.PreselectedSubfolders {
		g.Expect(schema.IsBidSubfolder(rel)).Should(BeTrue(), rel)
	}

	g.Expect(schema.IsBidSubfolder(schema.DefaultAttachmentSubfolder)).Should(BeTrue())
	g.Expect(schema.IsBidSubfolder("9. OUTROS")).Should(BeFalse())
}

func TestSplitRel(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(schema.SplitRel("3. EDITAVEIS/1. DECLARACAO")).Should(Equal([]string{"3. EDITAVEIS", "1. DECLARACAO"}))
	g.Expect(schema.SplitRel(`\1. HABILITACAO\\2. HAB_FISCAL/`)).Should(Equal([]string{"1. HABILITACAO", "2. HAB_FISCAL"}))
	g.Expect(schema.SplitRel(" / ")).Should(BeEmpty())
}

func TestMonths(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	months := schema.Months()
	g.Expect(months).Should(HaveLen(12))
	g.Expect(months[0]).Should(Equal("01. JANEIRO"))
	g.Expect(months[2]).Should(Equal("03. MARCO"))
	g.Expect(months[11]).Should(Equal("12. DEZEMBRO"))
}

func TestMonthLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "2", want: "02. FEVEREIRO"},
		{input: "02", want: "02. FEVEREIRO"},
		{input: "02. FEVEREIRO", want: "02. FEVEREIRO"},
		{input: "2.fevereiro", want: "02. FEVEREIRO"},
		{input: "Fevereiro", want: "02. FEVEREIRO"},
		{input: "março", want: "03. MARCO"},
		{input: " 12 ", want: "12. DEZEMBRO"},
		{input: "13", wantErr: true},
		{input: "0", wantErr: true},
		{input: "", wantErr: true},
		{input: "brumário", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			got, err := schema.MonthLabel(tt.input)
			if tt.wantErr {
				g.Expect(err).Should(HaveOccurred())

				return
			}

			g.Expect(err).ShouldNot(HaveOccurred())
			g.Expect(got).Should(Equal(tt.want))
		})
	}
}

func TestBidName(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	name := schema.BidName{Day: " 18", ID: "CE004 ", Portal: "BLL", GP: true, CityUF: "Salvador-BA"}
	g.Expect(name.String()).Should(Equal("18_CE004_BLL_GP_Salvador-BA"))

	g.Expect(schema.DefaultBidName.String()).Should(Equal("01_CE001_BLL_Salvador-BA"))
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	data := []byte(`
"01. Licitacao":
  "01. Participar": ~
  "05. Modelos_Padrao": [DECLARACAO, PROPOSTA, PLANILHA]
"04. Orcamentos_Propostas": {}
"00. Editais_ANALISAR":
  - "A"
  - "B":
      "B1": {}
`)

	s, err := schema.LoadYAML(data)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(s.Paths()).Should(Equal([]string{
		"01. Licitacao",
		"01. Licitacao/01. Participar",
		"01. Licitacao/05. Modelos_Padrao",
		"01. Licitacao/05. Modelos_Padrao/DECLARACAO",
		"01. Licitacao/05. Modelos_Padrao/PROPOSTA",
		"01. Licitacao/05. Modelos_Padrao/PLANILHA",
		"04. Orcamentos_Propostas",
		"00. Editais_ANALISAR",
		"00. Editais_ANALISAR/A",
		"00. Editais_ANALISAR/B",
		"00. Editais_ANALISAR/B/B1",
	}))
}

func TestLoadYAML_Invalid(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, err := schema.LoadYAML([]byte(`"a": 3`))
	g.Expect(err).Should(HaveOccurred(), "scalars name folders only inside lists")

	_, err = schema.LoadYAML([]byte("a: [b, ~]"))
	g.Expect(err).Should(HaveOccurred())

	_, err = schema.LoadYAML([]byte("- not\n- a mapping"))
	g.Expect(err).Should(HaveOccurred())
}

func TestLoadYAML_NamesMustBeStrings(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, err := schema.LoadYAML([]byte("Raiz: [01, 1.10]"))
	g.Expect(err).Should(MatchError(ContainSubstring("quote it")))

	_, err = schema.LoadYAML([]byte("2024:\n  Filha: {}\n"))
	g.Expect(err).Should(MatchError(ContainSubstring("quote it")))

	_, err = schema.LoadYAML([]byte("\"\": {}"))
	g.Expect(err).Should(MatchError(ContainSubstring("empty name")))

	s, err := schema.LoadYAML([]byte(`Raiz: ["01", "1.10"]`))
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(s.Paths()).Should(Equal([]string{"Raiz", "Raiz/01", "Raiz/1.10"}))
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	path := filepath.Join(t.TempDir(), "estrutura.yaml")
	g.Expect(os.WriteFile(path, []byte("Raiz:\n  Filha: {}\n"), 0o600)).Should(Succeed())

	s, err := schema.LoadFile(path)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(s.Paths()).Should(Equal([]string{"Raiz", "Raiz/Filha"}))

	_, err = schema.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	g.Expect(err).Should(HaveOccurred())
}
