// Package prompt asks the operator for required settings that were not
// supplied by flags, environment or config file.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/Orkogithub/nutanix-cluster-info/internal/config"
)

// ErrCancelled is returned when the operator aborts the form.
var ErrCancelled = errors.New("prompt cancelled")

// Field is one value to ask for.
type Field struct {
	// Key is the config flag name the answer is stored under.
	Key    string
	Label  string
	Secret bool
}

var knownFields = map[string]Field{
	config.FlagName:     {Key: config.FlagName, Label: "Please enter your name"},
	config.FlagHost:     {Key: config.FlagHost, Label: "CVM IP address"},
	config.FlagUsername: {Key: config.FlagUsername, Label: "Cluster username"},
	config.FlagPassword: {Key: config.FlagPassword, Label: "Password", Secret: true},
}

// FieldsFor returns the prompt fields for the given config keys, in order.
func FieldsFor(keys []string) []Field {
	fields := make([]Field, 0, len(keys))
	for _, key := range keys {
		if f, ok := knownFields[key]; ok {
			fields = append(fields, f)
		}
	}
	return fields
}

// Complete fills the required values missing from cfg.
//
// On a terminal the values are collected with an interactive form;
// otherwise one line per value is read from in. Nothing is asked when
// cfg.NoPrompt is set or nothing is missing. Answers left empty stay
// empty for Config.Validate to reject.
func Complete(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) (config.Config, error) {
	missing := cfg.Missing()
	if cfg.NoPrompt || len(missing) == 0 {
		return cfg, nil
	}
	fields := FieldsFor(missing)

	var (
		values map[string]string
		err    error
	)
	if isTerminal(in) {
		values, err = RunForm(ctx, fields, in, out)
	} else {
		values, err = ReadLines(fields, in, out)
	}
	if err != nil {
		return cfg, err
	}

	return apply(cfg, values), nil
}

// ReadLines asks for each field in turn and reads one line per answer.
func ReadLines(fields []Field, in io.Reader, out io.Writer) (map[string]string, error) {
	reader := bufio.NewReader(in)
	values := make(map[string]string, len(fields))

	for _, f := range fields {
		fmt.Fprintf(out, "%s: ", f.Label)
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			fmt.Fprintln(out)
			return nil, fmt.Errorf("failed to read %s: %w", f.Key, err)
		}
		if f.Secret {
			// Passwords may carry spaces; strip only the line ending
			values[f.Key] = strings.TrimRight(line, "\r\n")
		} else {
			values[f.Key] = strings.TrimSpace(line)
		}
	}

	return values, nil
}

// RunForm shows the interactive form and returns the answers keyed by field.
func RunForm(ctx context.Context, fields []Field, in io.Reader, out io.Writer) (map[string]string, error) {
	program := tea.NewProgram(
		newFormModel(fields),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("prompt failed: %w", err)
	}

	m, ok := final.(formModel)
	if !ok {
		return nil, fmt.Errorf("prompt failed: unexpected model %T", final)
	}
	if m.cancelled {
		return nil, ErrCancelled
	}
	return m.values(), nil
}

func apply(cfg config.Config, values map[string]string) config.Config {
	for key, value := range values {
		switch key {
		case config.FlagName:
			cfg.Name = value
		case config.FlagHost:
			cfg.Host = value
		case config.FlagUsername:
			cfg.Username = value
		case config.FlagPassword:
			cfg.Password = value
		}
	}
	return cfg
}

func isTerminal(in io.Reader) bool {
	file, ok := in.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
