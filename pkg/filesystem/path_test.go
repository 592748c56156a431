//nolint:varnamelen // Test files use idiomatic short variable names (t, etc.)
package filesystem_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/docket/pkg/filesystem"
)

func TestParsePath_Local(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	result, err := filesystem.ParsePath("/local/path/")
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(result).Should(Equal(filepath.Clean("/local/path")))

	result, err = filesystem.ParsePath(`\\servidor\licitacoes`)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(result).Should(Equal(`\\servidor\licitacoes`))
}

func TestParsePath_FileURL(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	result, err := filesystem.ParsePath("file:///srv/licitacoes")
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(result).Should(Equal(filepath.FromSlash("/srv/licitacoes")))
}

func TestParsePath_Home(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	result, err := filesystem.ParsePath("~/Documentos")
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(result).Should(Equal(filepath.Join(home, "Documentos")))
}

func TestParsePath_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		remote bool
	}{
		{name: "sftp", input: "sftp://user@host/path", remote: true},
		{name: "smb", input: "smb://server/share", remote: true},
		{name: "empty", input: "   ", remote: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			_, err := filesystem.ParsePath(tt.input)
			g.Expect(err).Should(HaveOccurred())
			g.Expect(errors.Is(err, filesystem.ErrRemotePath)).Should(Equal(tt.remote))
		})
	}
}

func TestCreateFileSystem(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fsys, path, err := filesystem.CreateFileSystem("/tmp/x/")
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(fsys).Should(BeAssignableToTypeOf(&filesystem.RealFileSystem{}))
	g.Expect(path).Should(Equal(filepath.Clean("/tmp/x")))
}
