package treebuilder_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/docket/internal/events"
	"github.com/joe/docket/internal/schema"
	"github.com/joe/docket/internal/treebuilder"
	"github.com/joe/docket/pkg/filesystem"

	pkgerrors "github.com/joe/docket/pkg/errors"
)

func sampleSchema() schema.FolderSchema {
	return schema.FolderSchema{
		schema.Dir("01. Licitacao",
			schema.Dir("01. Participar"),
			schema.Dir("02. Resultado"),
		),
		schema.Dir("02. Empresa"),
	}
}

func levels(evts []events.Event) []events.Level {
	out := make([]events.Level, 0, len(evts))
	for _, e := range evts {
		out = append(out, e.Level)
	}

	return out
}

func TestBuildTree_CreatesInDeclarationOrderWithIndent(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/cliente", time.Now())

	evts := events.Collect(treebuilder.New(fs).BuildTree("/cliente", sampleSchema()))

	g.Expect(evts).Should(HaveLen(4))
	g.Expect(evts[0].Message).Should(Equal("Criado: " + filepath.Join("/cliente", "01. Licitacao")))
	g.Expect(evts[1].Message).Should(Equal("  Criado: " + filepath.Join("/cliente", "01. Licitacao", "01. Participar")))
	g.Expect(evts[2].Message).Should(Equal("  Criado: " + filepath.Join("/cliente", "01. Licitacao", "02. Resultado")))
	g.Expect(evts[3].Message).Should(Equal("Criado: " + filepath.Join("/cliente", "02. Empresa")))
	g.Expect(levels(evts)).Should(HaveEach(events.LevelOK))
	g.Expect(filesystem.IsDir(fs, "/cliente/01. Licitacao/02. Resultado")).Should(BeTrue())
}

func TestBuildTree_SecondRunOnlyReportsExisting(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fs := filesystem.NewMockFileSystem()
	builder := treebuilder.New(fs)

	first := events.Fold(builder.BuildTree("/cliente", schema.ClientStructure()))
	g.Expect(first.OKCount).Should(Equal(schema.ClientStructure().Count()))
	g.Expect(first.ErrorCount).Should(BeZero())

	second := events.Fold(builder.BuildTree("/cliente", schema.ClientStructure()))
	g.Expect(second.OKCount).Should(BeZero())
	g.Expect(second.InfoCount).Should(Equal(schema.ClientStructure().Count()))
	g.Expect(second.Events[0].Message).Should(HavePrefix("Já existe: "))
}

func TestBuildTree_FileInTheWayIsReportedAndSiblingsContinue(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/cliente/01. Licitacao", []byte("not a folder"), time.Now())

	result := events.Fold(treebuilder.New(fs).BuildTree("/cliente", sampleSchema()))

	// The blocked folder and its two children fail; the sibling is created.
	g.Expect(result.ErrorCount).Should(Equal(3))
	g.Expect(result.OKCount).Should(Equal(1))
	g.Expect(result.Events[0].Path).Should(Equal(filepath.Join("/cliente", "01. Licitacao")))
	g.Expect(result.Events[0].Message).Should(HavePrefix("Falha ao criar '"))
	g.Expect(result.Events[3].Message).Should(HavePrefix("Criado: "))
	g.Expect(filesystem.IsDir(fs, "/cliente/02. Empresa")).Should(BeTrue())

	var fsErr *pkgerrors.FilesystemError
	g.Expect(errors.As(result.Events[0].Err, &fsErr)).Should(BeTrue())
	g.Expect(fsErr.Op).Should(Equal("create"))
}

func TestBuildTree_CreationFailureCarriesSuggestions(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fs := filesystem.NewMockFileSystem()
	locked := filepath.Join("/cliente", "02. Empresa")
	fs.FailOn(filesystem.OpMkdir, locked, os.ErrPermission)

	result := events.Fold(treebuilder.New(fs).BuildTree("/cliente", sampleSchema()))

	g.Expect(result.Errors()).Should(HaveLen(1))

	failed := result.Errors()[0]
	g.Expect(failed.Path).Should(Equal(locked))
	g.Expect(errors.Is(failed.Err, os.ErrPermission)).Should(BeTrue())
	g.Expect(pkgerrors.FormatSuggestions(failed.Err)).ShouldNot(BeEmpty())
}

func TestBuildFixed_SharedParentsReportedOnce(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/bid", time.Now())

	evts := events.Collect(treebuilder.New(fs).BuildFixed("/bid", schema.BidSubfolders))

	// 11 paths over 3 shared parents: 0. EDITAL_ANEXOS, 1. HABILITACAO (+6), 2. PROPOSTA, 3. EDITAVEIS (+3).
	g.Expect(evts).Should(HaveLen(13))
	g.Expect(levels(evts)).Should(HaveEach(events.LevelOK))
	g.Expect(evts[1].Message).Should(Equal("Criado: " + filepath.Join("/bid", "1. HABILITACAO")))
	g.Expect(evts[2].Message).Should(Equal("  Criado: " + filepath.Join("/bid", "1. HABILITACAO", "1. HAB_JURIDICA")))

	for _, rel := range schema.BidSubfolders {
		g.Expect(filesystem.IsDir(fs, filepath.Join("/bid", filepath.FromSlash(rel)))).Should(BeTrue(), rel)
	}
}

func TestBuildFixed_Idempotent(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fs := filesystem.NewMockFileSystem()
	builder := treebuilder.New(fs)

	events.Collect(builder.BuildFixed("/bid", []string{"a/b", "c"}))
	again := events.Fold(builder.BuildFixed("/bid", []string{"a/b", "c"}))

	g.Expect(again.InfoCount).Should(Equal(3))
	g.Expect(again.OKCount).Should(BeZero())
}

func TestBuildTree_RangesOnce(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fs := filesystem.NewMockFileSystem()
	seq := treebuilder.New(fs).BuildTree("/cliente", sampleSchema())

	g.Expect(events.Collect(seq)).Should(HaveLen(4))
	g.Expect(events.Collect(seq)).Should(BeEmpty())
}

func TestBuildTree_RealFileSystem(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	root := t.TempDir()
	builder := treebuilder.New(filesystem.NewRealFileSystem())

	result := events.Fold(builder.BuildTree(root, schema.ClientStructure()))
	g.Expect(result.Outcome()).Should(Equal(events.OutcomeSuccess))

	for _, rel := range schema.ClientStructure().Paths() {
		info, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
		g.Expect(err).ShouldNot(HaveOccurred(), rel)
		g.Expect(info.IsDir()).Should(BeTrue(), rel)
	}
}
