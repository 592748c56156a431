package tui_test

import (
	"bytes"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/joe/docket/internal/events"
	"github.com/joe/docket/internal/tui"
	"github.com/joe/docket/internal/tui/shared"

	pkgerrors "github.com/joe/docket/pkg/errors"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(m tea.Model, msg tea.Msg) (tui.Model, tea.Cmd) {
	next, cmd := m.Update(msg)

	model, ok := next.(tui.Model)
	Expect(ok).To(BeTrue())

	return model, cmd
}

func permissionError() events.Event {
	cause := pkgerrors.NewEnricher().Enrich(
		pkgerrors.NewFilesystemError("copy", "/dest/a.docx", os.ErrPermission), "/dest/a.docx")

	return events.Error("/dest/a.docx", cause, "Falha ao copiar 'a.docx': %v", os.ErrPermission)
}

var _ = Describe("Model", func() {
	var (
		model  tui.Model
		result events.BatchResult
	)

	BeforeEach(func() {
		result = events.Fold(events.Of(
			events.Info("/lic", "Pasta do mês: /lic/02. FEVEREIRO"),
			events.OK("/lic/x", "Licitação: /lic/x"),
			events.Warn("/lic", "Subpasta TEMPLATE não encontrada dentro da pasta MODELOS."),
		))

		model = tui.NewModel(tui.Options{
			Title:   "Docket",
			Success: "Licitação criada com sucesso!",
		}, func(emitter events.Emitter) (events.BatchResult, error) {
			for _, event := range result.Events {
				emitter.Emit(event)
			}

			return result, nil
		})
	})

	Describe("streaming", func() {
		It("appends events and counts warnings while running", func() {
			m, cmd := update(model, shared.EventMsg{Event: events.Warn("", "cuidado")})

			Expect(m.Log()).To(HaveLen(1))
			Expect(m.Done()).To(BeFalse())
			Expect(cmd).NotTo(BeNil(), "keeps listening")
			Expect(m.View()).To(ContainSubstring("🟡 Avisos"))
			Expect(m.View()).To(ContainSubstring("Avisos: 1  |  Erros: 0"))
		})

		It("replaces the streamed log with the complete result", func() {
			m, _ := update(model, shared.EventMsg{Event: result.Events[0]})
			m, cmd := update(m, shared.BatchDoneMsg{Result: result})

			Expect(cmd).To(BeNil())
			Expect(m.Done()).To(BeTrue())
			Expect(m.Log()).To(Equal(result.Events))
			Expect(m.Result().WarnCount).To(Equal(1))
		})

		It("ignores events that arrive after the batch returned", func() {
			m, _ := update(model, shared.BatchDoneMsg{Result: result})
			m, _ = update(m, shared.EventMsg{Event: events.OK("", "late")})

			Expect(m.Log()).To(HaveLen(3))
		})
	})

	Describe("running the batch", func() {
		It("runs the batch from Init and streams through the bridge", func() {
			batch, ok := model.Init()().(tea.BatchMsg)
			Expect(ok).To(BeTrue())
			Expect(batch).To(HaveLen(3))

			done, ok := batch[2]().(shared.BatchDoneMsg)
			Expect(ok).To(BeTrue())
			Expect(done.Result.Events).To(HaveLen(3))

			first, ok := batch[1]().(shared.EventMsg)
			Expect(ok).To(BeTrue())
			Expect(first.Event.Message).To(Equal("Pasta do mês: /lic/02. FEVEREIRO"))
		})
	})

	Describe("keys", func() {
		It("cycles the level filter with f", func() {
			m, _ := update(model, runeKey('f'))
			Expect(m.Filter()).To(Equal(shared.LevelFilter(events.LevelOK)))

			m, _ = update(m, runeKey('f'))
			Expect(m.Filter().String()).To(Equal("info"))
			Expect(m.View()).To(ContainSubstring("filtro: info"))
		})

		It("does not quit with q while the batch runs", func() {
			_, cmd := update(model, runeKey('q'))
			Expect(cmd).To(BeNil())
		})

		It("quits with q once done", func() {
			m, _ := update(model, shared.BatchDoneMsg{Result: result})
			_, cmd := update(m, runeKey('q'))

			Expect(cmd).NotTo(BeNil())
			Expect(cmd()).To(Equal(tea.QuitMsg{}))
		})

		It("quits at once with ctrl+c when the batch cannot be cancelled", func() {
			m, cmd := update(model, tea.KeyMsg{Type: tea.KeyCtrlC})

			Expect(cmd()).To(Equal(tea.QuitMsg{}))
			Expect(m.View()).To(BeEmpty())
		})
	})

	Describe("cancelling", func() {
		var (
			cancelled int
			m         tui.Model
		)

		BeforeEach(func() {
			cancelled = 0
			m = tui.NewModel(tui.Options{
				Title:  "Docket",
				Cancel: func() { cancelled++ },
			}, func(events.Emitter) (events.BatchResult, error) {
				return result, nil
			})
		})

		It("asks the batch to stop and waits for it", func() {
			next, cmd := update(m, tea.KeyMsg{Type: tea.KeyCtrlC})

			Expect(cmd).To(BeNil())
			Expect(cancelled).To(Equal(1))
			Expect(next.Cancelling()).To(BeTrue())
			Expect(next.View()).To(ContainSubstring("Interrompendo…"))
			Expect(next.View()).To(ContainSubstring("ctrl+c: forçar saída"))
		})

		It("quits once the cancelled batch returns", func() {
			next, _ := update(m, tea.KeyMsg{Type: tea.KeyCtrlC})
			next, cmd := update(next, shared.BatchDoneMsg{Result: result})

			Expect(next.Done()).To(BeTrue())
			Expect(cmd).NotTo(BeNil())
			Expect(cmd()).To(Equal(tea.QuitMsg{}))
		})

		It("forces the exit on a second ctrl+c", func() {
			next, _ := update(m, tea.KeyMsg{Type: tea.KeyCtrlC})
			_, cmd := update(next, tea.KeyMsg{Type: tea.KeyCtrlC})

			Expect(cmd()).To(Equal(tea.QuitMsg{}))
			Expect(cancelled).To(Equal(1))
		})
	})

	Describe("view", func() {
		It("shows the success message of a clean run", func() {
			clean := events.Fold(events.Of(events.OK("", "Criado: /a")))
			m, _ := update(model, shared.BatchDoneMsg{Result: clean})

			Expect(m.View()).To(ContainSubstring("Licitação criada com sucesso!"))
			Expect(m.View()).To(ContainSubstring("🟢 OK"))
		})

		It("shows the warning toast", func() {
			m, _ := update(model, shared.BatchDoneMsg{Result: result})

			Expect(m.View()).To(ContainSubstring("Concluído com avisos. Verifique o log."))
		})

		It("lists errors with their suggestions", func() {
			failed := events.Fold(events.Of(permissionError()))
			m, _ := update(model, shared.BatchDoneMsg{Result: failed})

			view := m.View()
			Expect(view).To(ContainSubstring("Concluído com erros. Verifique o log."))
			Expect(view).To(ContainSubstring("🔴 Erros"))
			Expect(view).To(ContainSubstring("•"))
		})

		It("adapts to the window width", func() {
			m, _ := update(model, tea.WindowSizeMsg{Width: 120, Height: 40})

			Expect(m.View()).To(ContainSubstring("Docket"))
		})
	})
})

var _ = Describe("PlainEmitter", func() {
	It("prints leveled lines and suggestions under errors", func() {
		var out bytes.Buffer

		emitter := tui.PlainEmitter{W: &out}
		emitter.Emit(events.OK("", "[copiar] a.docx"))
		emitter.Emit(permissionError())

		Expect(out.String()).To(ContainSubstring("[OK] [copiar] a.docx"))
		Expect(out.String()).To(ContainSubstring("[ERROR] Falha ao copiar 'a.docx'"))
		Expect(out.String()).To(ContainSubstring("•"))
	})

	It("prints the summary", func() {
		var out bytes.Buffer

		tui.PrintSummary(&out, events.Fold(events.Of(events.Warn("", "x"))), "Pronto")

		Expect(out.String()).To(ContainSubstring("Concluído com avisos"))
		Expect(out.String()).To(ContainSubstring("Avisos: 1  |  Erros: 0"))
	})
})
