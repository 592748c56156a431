// Package engine runs docket batches: it composes the resolver, tree builder
// and copier for one operation, forwards every event to an optional emitter
// and log file, and folds the events into a BatchResult.
package engine

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/joe/docket/internal/config"
	"github.com/joe/docket/internal/copier"
	"github.com/joe/docket/internal/events"
	"github.com/joe/docket/internal/resolver"
	"github.com/joe/docket/internal/schema"
	"github.com/joe/docket/internal/treebuilder"
	"github.com/joe/docket/pkg/fileops"
	"github.com/joe/docket/pkg/filesystem"

	pkgerrors "github.com/joe/docket/pkg/errors"
)

// Warning messages shown when auto-detection fails.
const (
	MsgModelsNotFound   = "Pasta MODELOS (raiz) não encontrada. Selecione manualmente."
	MsgTemplateNotFound = "Subpasta TEMPLATE não encontrada dentro da pasta MODELOS."
)

// MsgCancelled closes the log of a cancelled batch.
const MsgCancelled = "Interrompido pelo usuário."

// ErrCancelled is returned when Cancel stopped a batch before it finished.
var ErrCancelled = errors.New("batch cancelled")

var errNotDirectory = errors.New("not a directory")

// Engine runs batches against one filesystem.
type Engine struct {
	FS           filesystem.FileSystem
	Policy       config.ConflictPolicy
	Filter       copier.FileFilter
	TimeProvider TimeProvider

	emitter    events.Emitter
	logFile    *os.File
	logMu      sync.Mutex
	cancelChan chan struct{}
	cancelOnce sync.Once
}

// BidRequest describes one bid folder to create.
type BidRequest struct {
	// ParticipateDir holds the month folders ("01. Participar").
	ParticipateDir string
	Month          string
	Name           schema.BidName

	// ModelsRoot and TemplateRoot override auto-detection when they exist.
	ModelsRoot   string
	TemplateRoot string

	// Subfolders whose template documents are copied.
	Subfolders []string

	Attachments []string
	AttachTo    string
}

// BidResult is the outcome of CreateBid.
type BidResult struct {
	events.BatchResult

	MonthDir     string
	BidDir       string
	ModelsRoot   string
	TemplateRoot string
}

// Detection reports the models and template folders a bid would use.
type Detection struct {
	ModelsRoot    string
	ModelsFound   bool
	TemplateRoot  string
	TemplateFound bool
}

// New creates an engine over fsys. A nil filter copies every file.
func New(fsys filesystem.FileSystem, policy config.ConflictPolicy, filter copier.FileFilter) *Engine {
	return &Engine{
		FS:           fsys,
		Policy:       policy,
		Filter:       filter,
		TimeProvider: &RealTimeProvider{},
		cancelChan:   make(chan struct{}),
	}
}

// Cancel asks the running batch to stop. The file or folder in progress is
// finished first, so no partial copy is left behind; the batch then returns
// ErrCancelled. Safe to call more than once and from any goroutine.
func (e *Engine) Cancel() {
	e.cancelOnce.Do(func() {
		close(e.cancelChan)
	})
}

func (e *Engine) cancelled() bool {
	select {
	case <-e.cancelChan:
		return true
	default:
		return false
	}
}

// SetEventEmitter sets the emitter receiving every event as it happens.
func (e *Engine) SetEventEmitter(emitter events.Emitter) {
	e.emitter = emitter
}

// CreateStructure creates schema s under root. A missing root is created
// first; if that fails the batch is aborted with a ConfigurationError.
func (e *Engine) CreateStructure(root string, s schema.FolderSchema) (events.BatchResult, error) {
	result := e.start("structure " + root)

	if err := e.ensureRoot(root, &result); err != nil {
		return e.finish(result), err
	}

	e.record(&result, events.Info(root, "Iniciando criação em: %s", root))

	if !e.drain(&result, treebuilder.New(e.FS).BuildTree(root, s)) {
		e.record(&result, events.Warn(root, MsgCancelled))

		return e.finish(result), ErrCancelled
	}

	e.record(&result, events.Info(root, "Concluído."))

	return e.finish(result), nil
}

// CreateBid resolves the month folder, creates the bid folder with its fixed
// subfolders, copies template documents and attaches files.
//
// Only a month or bid folder that cannot be established aborts the batch;
// everything after that is reported per folder or file.
func (e *Engine) CreateBid(req BidRequest) (BidResult, error) {
	var out BidResult

	result := e.start("bid " + req.Name.String())
	res := resolver.New(e.FS)

	monthDir, err := res.ResolveMonth(req.ParticipateDir, req.Month)
	if err != nil {
		return e.abortBid(out, result, req.ParticipateDir, err)
	}

	out.MonthDir = monthDir
	e.record(&result, events.Info(monthDir, "Pasta do mês: %s", monthDir))

	dest := filepath.Join(monthDir, req.Name.String())
	if err := fileops.NewFileOps(e.FS).EnsureDir(dest); err != nil {
		return e.abortBid(out, result, dest, err)
	}

	out.BidDir = dest
	e.record(&result, events.OK(dest, "Licitação: %s", dest))

	if !e.drain(&result, treebuilder.New(e.FS).BuildFixed(dest, schema.BidSubfolders)) {
		return e.cancelBid(out, result)
	}

	detection := e.detect(req.ParticipateDir, req.ModelsRoot, req.TemplateRoot, &result)
	out.ModelsRoot = detection.ModelsRoot
	out.TemplateRoot = detection.TemplateRoot

	cp := copier.New(e.FS, e.Policy, e.Filter)

	if detection.TemplateFound && len(req.Subfolders) > 0 {
		e.record(&result, events.Info(detection.TemplateRoot, "Copiando padrões de: %s", detection.TemplateRoot))
		if !e.drain(&result, cp.CopySelected(detection.TemplateRoot, dest, req.Subfolders)) {
			return e.cancelBid(out, result)
		}
	}

	if len(req.Attachments) > 0 {
		attachTo := req.AttachTo
		if attachTo == "" {
			attachTo = schema.DefaultAttachmentSubfolder
		}

		if !e.drain(&result, cp.CopyAttachments(req.Attachments, dest, attachTo)) {
			return e.cancelBid(out, result)
		}
	}

	out.BatchResult = e.finish(result)

	return out, nil
}

// Detect reports which models and template folders CreateBid would use for
// participateDir. modelsRoot overrides detection of the models folder when it exists.
func (e *Engine) Detect(participateDir, modelsRoot string) (Detection, events.BatchResult) {
	result := e.start("detect " + participateDir)
	detection := e.detect(participateDir, modelsRoot, "", &result)

	if detection.ModelsFound {
		e.record(&result, events.OK(detection.ModelsRoot, "Pasta MODELOS: %s", detection.ModelsRoot))
	}

	if detection.TemplateFound {
		e.record(&result, events.OK(detection.TemplateRoot, "Template: %s", detection.TemplateRoot))
	}

	return detection, e.finish(result)
}

// detect finds the models root and template, recording a warning for each
// one that is missing. A folder whose search failed gets the error event only.
// Explicit folders win when they exist.
func (e *Engine) detect(participateDir, modelsRoot, templateRoot string, result *events.BatchResult) Detection {
	res := resolver.New(e.FS)

	var (
		detection Detection
		failed    bool
	)

	switch {
	case modelsRoot != "" && filesystem.IsDir(e.FS, modelsRoot):
		detection.ModelsRoot, detection.ModelsFound = modelsRoot, true
	default:
		parent := filepath.Dir(filepath.Clean(participateDir))

		found, ok, err := res.FindModelsRoot(parent)
		if err != nil {
			e.record(result, e.errorEvent(parent, err, "Falha ao procurar pasta MODELOS em '%s': %v", parent, err))
			failed = true
		}

		detection.ModelsRoot, detection.ModelsFound = found, ok
	}

	switch {
	case templateRoot != "" && filesystem.IsDir(e.FS, templateRoot):
		detection.TemplateRoot, detection.TemplateFound = templateRoot, true
	case !detection.ModelsFound:
		if !failed {
			e.record(result, notFound(participateDir, "models folder", MsgModelsNotFound))
		}

		return detection
	default:
		found, ok, err := res.FindTemplate(detection.ModelsRoot)
		if err != nil {
			e.record(result, e.errorEvent(detection.ModelsRoot, err,
				"Falha ao procurar TEMPLATE em '%s': %v", detection.ModelsRoot, err))
			failed = true
		}

		detection.TemplateRoot, detection.TemplateFound = found, ok
	}

	if !detection.TemplateFound && !failed {
		e.record(result, notFound(detection.ModelsRoot, "template folder", MsgTemplateNotFound))
	}

	return detection
}

// notFound is the warning for a folder that detection could not find.
func notFound(path, what, msg string) events.Event {
	warning := events.Warn(path, "%s", msg)
	warning.Err = fmt.Errorf("%s under %s: %w", what, path, pkgerrors.ErrNotFound)

	return warning
}

func (e *Engine) ensureRoot(root string, result *events.BatchResult) error {
	info, err := e.FS.Stat(root)
	if err == nil {
		if !info.IsDir() {
			return e.abort(result, root, errNotDirectory)
		}

		return nil
	}

	if err := fileops.NewFileOps(e.FS).EnsureDir(root); err != nil {
		return e.abort(result, root, err)
	}

	e.record(result, events.Info(root, "Pasta base inexistente — criada: %s", root))

	return nil
}

func (e *Engine) abortBid(out BidResult, result events.BatchResult, path string, err error) (BidResult, error) {
	cfgErr := e.abort(&result, path, err)
	out.BatchResult = e.finish(result)

	return out, cfgErr
}

func (e *Engine) cancelBid(out BidResult, result events.BatchResult) (BidResult, error) {
	e.record(&result, events.Warn(out.BidDir, MsgCancelled))
	out.BatchResult = e.finish(result)

	return out, ErrCancelled
}

// abort records the fatal error as an event and returns it as a ConfigurationError.
func (e *Engine) abort(result *events.BatchResult, path string, err error) error {
	cfgErr := &pkgerrors.ConfigurationError{Path: path, Err: err}
	e.record(result, e.errorEvent(path, cfgErr, "Não foi possível preparar '%s': %v", path, err))

	return cfgErr
}

func (e *Engine) errorEvent(path string, err error, format string, args ...any) events.Event {
	return events.Error(path, pkgerrors.NewEnricher().Enrich(err, path), format, args...)
}

func (e *Engine) start(operation string) events.BatchResult {
	result := events.BatchResult{
		RunID:     uuid.NewString(),
		StartTime: e.TimeProvider.Now(),
	}

	e.logToFile(fmt.Sprintf("--- Run %s: %s ---", result.RunID, operation))

	return result
}

func (e *Engine) finish(result events.BatchResult) events.BatchResult {
	result.EndTime = e.TimeProvider.Now()

	e.logToFile(fmt.Sprintf("--- Run %s %s in %s (ok %d, info %d, warn %d, error %d) ---",
		result.RunID, result.Outcome(), result.Duration().Round(time.Millisecond),
		result.OKCount, result.InfoCount, result.WarnCount, result.ErrorCount))

	return result
}

// drain records every event of seq. It stops pulling units once the engine is
// cancelled and then reports false.
func (e *Engine) drain(result *events.BatchResult, seq iter.Seq[events.Event]) bool {
	for event := range seq {
		e.record(result, event)

		if e.cancelled() {
			return false
		}
	}

	return !e.cancelled()
}

// record folds event into result and forwards it to the emitter and log file.
func (e *Engine) record(result *events.BatchResult, event events.Event) {
	result.Add(event)
	e.emit(event)
	e.logToFile(event.String())
}

// emit sends an event if an emitter is configured.
func (e *Engine) emit(event events.Event) {
	if e.emitter != nil {
		e.emitter.Emit(event)
	}
}
