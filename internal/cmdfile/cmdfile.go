// SPDX-License-Identifier: MPL-2.0

package cmdfile

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"

	"github.com/cmdtree/cmdtree/internal/discovery"
	"github.com/cmdtree/cmdtree/pkg/cmdtree"
	"github.com/cmdtree/cmdtree/pkg/cueutil"
)

const (
	// FormatCUE is a CUE command file.
	FormatCUE Format = "cue"
	// FormatTOML is a TOML command file.
	FormatTOML Format = "toml"

	// ArgsPhrases passes one script argument per phrase.
	ArgsPhrases ArgMode = "phrases"
	// ArgsGreedy passes the rest of the line as a single argument.
	ArgsGreedy ArgMode = "greedy"
)

var (
	//go:embed commandfile_schema.cue
	schemaSource []byte

	schema = cueutil.MustCompileSchema(schemaSource, "#CommandFile")

	// ErrUnknownFormat is returned for files that are neither .cue nor .toml.
	ErrUnknownFormat = errors.New("unknown command file format")

	// ErrNoScriptCompiler is returned when a file has scripts but the loader
	// was built without WithScriptCompiler.
	ErrNoScriptCompiler = errors.New("no script compiler configured")
)

type (
	// Format is the syntax of a command file.
	Format string

	// ArgMode selects how the remaining input becomes script arguments.
	ArgMode string

	// File is a decoded command file.
	File struct {
		Commands []Command `json:"commands"`
	}

	// Command is one entry of a command file.
	Command struct {
		Name                string  `json:"name"`
		Parent              string  `json:"parent,omitempty"`
		Head                *Head   `json:"head,omitempty"`
		Description         string  `json:"description,omitempty"`
		LongDescription     string  `json:"long_description,omitempty"`
		Usage               string  `json:"usage,omitempty"`
		Permission          string  `json:"permission,omitempty"`
		NoArgumentSeparator bool    `json:"no_argument_separator"`
		Script              string  `json:"script,omitempty"`
		ShowUsage           bool    `json:"show_usage"`
		Args                ArgMode `json:"args"`
	}

	// ScriptCompiler turns a script into an action, failing on invalid syntax.
	ScriptCompiler interface {
		Compile(script string, greedyArgs bool) (cmdtree.Action, error)
	}

	// Loader reads command files and turns them into registrations.
	Loader struct {
		scripts ScriptCompiler
		logger  *log.Logger
	}

	// LoaderOption configures a Loader.
	LoaderOption func(*Loader)
)

// WithScriptCompiler sets the compiler used for command scripts.
func WithScriptCompiler(c ScriptCompiler) LoaderOption {
	return func(l *Loader) {
		l.scripts = c
	}
}

// WithLogger sets the loader's logger.
func WithLogger(logger *log.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a Loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// FormatOf derives the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cue":
		return FormatCUE, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// Load reads the file at path and returns one registration per command, in
// file order. Registrations carry path as their Source.
func (l *Loader) Load(path string) ([]discovery.Registration, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read command file: %w", err)
	}
	file, err := Parse(data, format, path)
	if err != nil {
		return nil, err
	}
	regs, err := l.Registrations(file, path)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("loaded command file", "file", path, "commands", len(regs))
	return regs, nil
}

// Parse decodes and validates a command file. filename is only used in error
// messages.
func Parse(data []byte, format Format, filename string) (*File, error) {
	var (
		file *File
		err  error
	)
	switch format {
	case FormatCUE:
		file, err = cueutil.Decode[File](schema, data, cueutil.WithFilename(filename))
	case FormatTOML:
		file, err = parseTOML(data, filename)
	default:
		return nil, fmt.Errorf("%s: %w %q", filename, ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if err := validate(file, filename); err != nil {
		return nil, err
	}
	return file, nil
}

func parseTOML(data []byte, filename string) (*File, error) {
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, filename); err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%s:%d:%d: %s", filename, row, col, derr.Error())
		}
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	if _, ok := doc["commands"]; !ok {
		doc["commands"] = []any{}
	}
	return cueutil.DecodeValue[File](schema, doc, cueutil.WithFilename(filename))
}

// Registrations builds the registrations for an already parsed file.
func (l *Loader) Registrations(file *File, source string) ([]discovery.Registration, error) {
	regs := make([]discovery.Registration, 0, len(file.Commands))
	for i, cmd := range file.Commands {
		node, err := l.node(cmd)
		if err != nil {
			return nil, fmt.Errorf("%s: commands[%d] (%s): %w", source, i, cmd.Name, err)
		}
		regs = append(regs, discovery.Registration{
			Command: &discovery.NodeCommand{Node: node},
			Name:    cmd.Name,
			Parent:  cmd.Parent,
			Source:  source,
		})
	}
	return regs, nil
}

func (l *Loader) node(cmd Command) (*cmdtree.Node, error) {
	head, err := buildHead(cmd)
	if err != nil {
		return nil, err
	}
	action, err := l.action(cmd)
	if err != nil {
		return nil, err
	}

	node := cmdtree.NewNode(action, head)
	setString := func(key cmdtree.DataKey, value string) {
		if value != "" {
			node.SetData(key, value)
		}
	}
	setString(cmdtree.DataShortDescription, cmd.Description)
	setString(cmdtree.DataLongDescription, cmd.LongDescription)
	setString(cmdtree.DataUsage, cmd.Usage)
	setString(cmdtree.DataPermission, cmd.Permission)
	if cmd.NoArgumentSeparator {
		node.SetData(cmdtree.DataNoArgumentSeparator, true)
	}
	return node, nil
}

func (l *Loader) action(cmd Command) (cmdtree.Action, error) {
	if cmd.ShowUsage {
		return showUsage, nil
	}
	if l.scripts == nil {
		return nil, ErrNoScriptCompiler
	}
	return l.scripts.Compile(cmd.Script, cmd.Args == ArgsGreedy)
}

func showUsage(*cmdtree.Invocation) cmdtree.Result {
	return cmdtree.Abnormal(cmdtree.KeyShowUsage)
}
