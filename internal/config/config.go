// Package config handles application configuration and command-line argument parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/joho/godotenv"

	"github.com/joe/docket/internal/schema"
	"github.com/joe/docket/pkg/filesystem"
)

// ErrNoCommand is returned when no subcommand was given.
var ErrNoCommand = errors.New("a command is required: structure, bid or detect")

// StructureCmd creates the client folder structure.
type StructureCmd struct {
	Root   string `arg:"positional" help:"root folder of the client (created if missing)"`
	Schema string `arg:"--schema,env:DOCKET_SCHEMA" help:"YAML file describing the folder tree (default: built-in client structure)"`
}

// BidCmd creates a bid folder inside a month folder and fills it.
type BidCmd struct {
	Base         string   `arg:"-b,--base,env:DOCKET_BASE" help:"folder holding the month folders, usually '01. Participar' (default: current directory)"`
	Month        string   `arg:"-m,--month,env:DOCKET_MONTH" help:"month as 2, 02, '02. FEVEREIRO' or fevereiro"`
	Day          string   `arg:"--day" default:"01" help:"day of the bid"`
	ID           string   `arg:"--id" default:"CE001" help:"bid identifier"`
	Portal       string   `arg:"--portal" default:"BLL" help:"procurement portal"`
	GP           bool     `arg:"--gp" help:"add the GP marker to the folder name"`
	City         string   `arg:"--city" default:"Salvador-BA" help:"city-UF"`
	ModelsRoot   string   `arg:"--models,env:DOCKET_MODELS" help:"models folder (default: auto-detected next to the base folder)"`
	TemplateRoot string   `arg:"--template,env:DOCKET_TEMPLATE" help:"template folder (default: auto-detected inside the models folder)"`
	Subfolders   []string `arg:"-s,--subfolder,separate" help:"bid subfolder whose template documents are copied (repeatable; default: the usual selection)"`
	All          bool     `arg:"--all" help:"copy template documents for every bid subfolder"`
	NoTemplates  bool     `arg:"--no-templates" help:"do not copy template documents"`
	Attach       []string `arg:"-a,--attach,separate" help:"file to attach to the bid (repeatable)"`
	AttachTo     string   `arg:"--attach-to" default:"0. EDITAL_ANEXOS" help:"bid subfolder receiving attachments"`
}

// Name returns the bid folder name built from the flags.
func (b *BidCmd) Name() schema.BidName {
	return schema.BidName{Day: b.Day, ID: b.ID, Portal: b.Portal, GP: b.GP, CityUF: b.City}
}

// DetectCmd reports the auto-detected models and template folders.
type DetectCmd struct {
	Base       string `arg:"-b,--base,env:DOCKET_BASE" help:"folder holding the month folders (default: current directory)"`
	ModelsRoot string `arg:"--models,env:DOCKET_MODELS" help:"models folder to inspect instead of detecting one"`
}

// Config holds the application configuration
type Config struct {
	Structure *StructureCmd `arg:"subcommand:structure" help:"create the client folder structure"`
	Bid       *BidCmd       `arg:"subcommand:bid" help:"create a bid folder and copy template documents into it"`
	Detect    *DetectCmd    `arg:"subcommand:detect" help:"show which models and template folders would be used"`

	Policy  ConflictPolicy `arg:"-p,--policy,env:DOCKET_POLICY" default:"duplicate" help:"when a file already exists: skip|overwrite|duplicate (aliases: pular|substituir|duplicar)"`
	Include string         `arg:"--include,env:DOCKET_INCLUDE" help:"only copy files whose name matches this glob, e.g. '*.{docx,xlsx}'"`
	LogFile string         `arg:"--log-file,env:DOCKET_LOG_FILE" help:"also write the log to this file"`
	Plain   bool           `arg:"--plain,env:DOCKET_PLAIN" help:"print plain log lines instead of the interactive view"`
}

// Description returns the program description for go-arg
func (Config) Description() string {
	return "Creates standard folder trees for procurement work and fills bid folders from templates"
}

// Version returns the version string for go-arg
func (Config) Version() string {
	return "docket 1.0.0"
}

// ParseFlags parses command-line flags and returns configuration.
// A .env file in the working directory, if any, provides environment defaults.
func ParseFlags() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{Policy: Duplicate}

	arg.MustParse(cfg)

	return PostProcessConfig(cfg)
}

// PostProcessConfig applies post-processing logic to a parsed config
func PostProcessConfig(cfg *Config) (*Config, error) {
	if cfg.Include != "" && !doublestar.ValidatePattern(strings.ToLower(cfg.Include)) {
		return nil, fmt.Errorf("invalid include pattern: %s", cfg.Include) //nolint:err113 // includes the rejected value
	}

	var err error

	switch {
	case cfg.Structure != nil:
		err = cfg.Structure.postProcess()
	case cfg.Bid != nil:
		err = cfg.Bid.postProcess()
	case cfg.Detect != nil:
		err = cfg.Detect.postProcess()
	default:
		err = ErrNoCommand
	}

	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *StructureCmd) postProcess() error {
	if strings.TrimSpace(c.Root) == "" {
		return errors.New("root folder is required") //nolint:err113 // simple validation error
	}

	root, err := filesystem.ParsePath(c.Root)
	if err != nil {
		return fmt.Errorf("invalid root folder: %w", err)
	}

	c.Root = root

	if c.Schema != "" {
		if _, err := os.Stat(c.Schema); err != nil {
			return fmt.Errorf("cannot access schema file: %w", err)
		}
	}

	return nil
}

func (b *BidCmd) postProcess() error {
	base, err := resolveBase(b.Base)
	if err != nil {
		return err
	}

	b.Base = base

	if strings.TrimSpace(b.Month) == "" {
		return errors.New("month is required (--month)") //nolint:err113 // simple validation error
	}

	label, err := schema.MonthLabel(b.Month)
	if err != nil {
		return fmt.Errorf("invalid month: %w", err)
	}

	b.Month = label

	for _, part := range []string{b.Day, b.ID, b.Portal, b.City} {
		if strings.TrimSpace(part) == "" {
			return errors.New("day, id, portal and city must not be empty") //nolint:err113 // simple validation error
		}

		if strings.ContainsAny(part, `/\`) {
			return fmt.Errorf("bid name part contains a path separator: %q", part) //nolint:err113 // includes the rejected value
		}
	}

	if b.ModelsRoot, err = optionalPath(b.ModelsRoot); err != nil {
		return fmt.Errorf("invalid models folder: %w", err)
	}

	if b.TemplateRoot, err = optionalPath(b.TemplateRoot); err != nil {
		return fmt.Errorf("invalid template folder: %w", err)
	}

	switch {
	case b.NoTemplates:
		b.Subfolders = nil
	case b.All:
		b.Subfolders = append([]string(nil), schema.BidSubfolders...)
	case len(b.Subfolders) == 0:
		b.Subfolders = append([]string(nil), schema.PreselectedSubfolders...)
	}

	for _, rel := range b.Subfolders {
		if !schema.IsBidSubfolder(rel) {
			return fmt.Errorf("unknown bid subfolder %q (valid: %s)", rel, strings.Join(schema.BidSubfolders, ", ")) //nolint:err113,lll // includes the rejected value
		}
	}

	if strings.TrimSpace(b.AttachTo) == "" {
		b.AttachTo = schema.DefaultAttachmentSubfolder
	}

	return nil
}

func (c *DetectCmd) postProcess() error {
	base, err := resolveBase(c.Base)
	if err != nil {
		return err
	}

	c.Base = base

	if c.ModelsRoot, err = optionalPath(c.ModelsRoot); err != nil {
		return fmt.Errorf("invalid models folder: %w", err)
	}

	return nil
}

// resolveBase defaults the month folder base to the working directory.
func resolveBase(base string) (string, error) {
	if strings.TrimSpace(base) == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("cannot determine current directory: %w", err)
		}

		return wd, nil
	}

	path, err := filesystem.ParsePath(base)
	if err != nil {
		return "", fmt.Errorf("invalid base folder: %w", err)
	}

	return path, nil
}

func optionalPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", nil
	}

	return filesystem.ParsePath(path)
}
