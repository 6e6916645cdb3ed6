// Package snake walks a command's flags and prompts for their values, so a
// habit can be set up without remembering every flag.
package snake

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Ask returns the answer for f. An empty answer leaves the flag unset.
type Ask func(f *pflag.Flag) (string, error)

// Fill prompts for every visible flag of cmd that is not already set and not
// named in skip, in the order the flags were defined.
func Fill(cmd *cobra.Command, skip []string, ask Ask) error {
	skipped := make(map[string]bool, len(skip))
	for _, s := range skip {
		skipped[s] = true
	}

	flags := cmd.Flags()
	flags.SortFlags = false
	var fs []*pflag.Flag
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden || f.Changed || skipped[f.Name] {
			return
		}
		fs = append(fs, f)
	})

	for _, f := range fs {
		answer, err := ask(f)
		if err != nil {
			return err
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			continue
		}
		if err := set(flags, f, answer); err != nil {
			return err
		}
	}
	return nil
}

func set(flags *pflag.FlagSet, f *pflag.Flag, answer string) error {
	values := []string{answer}
	switch f.Value.Type() {
	case "stringArray", "stringSlice":
		values = strings.Split(answer, ",")
	case "bool":
		b, err := ParseBool(answer)
		if err != nil {
			return fmt.Errorf("--%s: %w", f.Name, err)
		}
		values = []string{strconv.FormatBool(b)}
	}
	for _, v := range values {
		// Set through the flag set so Changed is recorded.
		if err := flags.Set(f.Name, strings.TrimSpace(v)); err != nil {
			return fmt.Errorf("--%s: %w", f.Name, err)
		}
	}
	return nil
}

// ParseBool is strconv.ParseBool with the addition of Yes/No parsing.
func ParseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "y", "Y", "yes", "YES", "Yes":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "n", "N", "no", "NO", "No":
		return false, nil
	}
	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

var templates = &promptui.PromptTemplates{
	Prompt:  "{{ . }} : ",
	Valid:   "{{ . | green }} : ",
	Invalid: "{{ . | red }} : ",
	Success: "{{ . | bold }} : ",
}

// Text asks for a single line of required text.
func Text(label string, in io.Reader, out io.Writer) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Templates: templates,
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("empty")
			}
			return nil
		},
		Stdin:  ioutil.NopCloser(in),
		Stdout: nopWriteCloser{out},
	}
	return prompt.Run()
}

// PromptUI returns an Ask that reads answers on a terminal. Flags named in
// choices are offered as a list instead of free text.
func PromptUI(in io.Reader, out io.Writer, choices map[string][]string) Ask {
	return func(f *pflag.Flag) (string, error) {
		if items, ok := choices[f.Name]; ok {
			return selectOne(f, items, in, out)
		}

		validate := func(input string) error {
			if input == "" {
				return nil
			}
			switch f.Value.Type() {
			case "bool":
				_, err := ParseBool(input)
				return err
			case "int":
				_, err := strconv.Atoi(input)
				return err
			}
			return nil
		}

		label := fmt.Sprintf("%s (%s)", f.Usage, asFlag(f))
		if f.DefValue != "" && f.DefValue != "[]" {
			label = fmt.Sprintf("%s [%s]", label, f.DefValue)
		}
		prompt := promptui.Prompt{
			Label:     label,
			Templates: templates,
			Validate:  validate,
			Stdin:     ioutil.NopCloser(in),
			Stdout:    nopWriteCloser{out},
		}
		return prompt.Run()
	}
}

func selectOne(f *pflag.Flag, items []string, in io.Reader, out io.Writer) (string, error) {
	prompt := promptui.Select{
		HideHelp: true,
		Label:    f.Usage,
		Items:    items,
		Size:     10,
		Templates: &promptui.SelectTemplates{
			Label:    "{{ . }}?",
			Active:   "➜  {{ . | bold }}",
			Inactive: "   {{ . }}",
			Selected: "{{ . | bold }}",
		},
		Stdin:  ioutil.NopCloser(in),
		Stdout: nopWriteCloser{out},
	}
	_, result, err := prompt.Run()
	return result, err
}

func asFlag(f *pflag.Flag) string {
	if f.Shorthand != "" {
		return fmt.Sprintf("--%s, -%s", f.Name, f.Shorthand)
	}
	return fmt.Sprintf("--%s", f.Name)
}
