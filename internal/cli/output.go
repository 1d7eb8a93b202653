package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	Out    io.Writer
	ErrOut io.Writer
}

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command, quietHelp string) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, quietHelp)
}

// NewFormatter builds a formatter from a command's --json and --quiet flags,
// writing to the command's output streams
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:   jsonOutput,
		Quiet:  quietMode,
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.ErrOut == nil {
		return os.Stderr
	}
	return f.ErrOut
}

// Printf writes human-readable output; it is silent in quiet and JSON modes
func (f *OutputFormatter) Printf(format string, args ...any) {
	if f.Quiet || f.JSON {
		return
	}
	fmt.Fprintf(f.out(), format, args...)
}

// Println writes a raw line regardless of mode, for quiet-mode values
func (f *OutputFormatter) Println(args ...any) {
	fmt.Fprintln(f.out(), args...)
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			fmt.Fprintf(f.out(), "%d\n", idGetter.GetID())
			return nil
		}
	}

	if f.JSON {
		return f.JSONSuccess(map[string]any{"data": data})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// JSONSuccess writes fields as a JSON object with "success": true
func (f *OutputFormatter) JSONSuccess(fields map[string]any) error {
	out := map[string]any{"success": true}
	for k, v := range fields {
		out[k] = v
	}
	return json.NewEncoder(f.out()).Encode(out)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(f.errOut(), "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err and returns it wrapped in a StatusError so the process
// exits with the matching code
func (f *OutputFormatter) Fail(err error) error {
	return f.FailWithSuggestion(err, suggestionFor(err))
}

// FailWithSuggestion is Fail with an explicit hint for the user
func (f *OutputFormatter) FailWithSuggestion(err error, suggestion string) error {
	code, exit := Classify(err)
	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		fmt.Fprintf(os.Stderr, "Error formatting error message: %v\n", fmtErr)
	}
	return &StatusError{Code: exit, Err: err}
}

func suggestionFor(err error) string {
	code, _ := Classify(err)
	switch code {
	case "REPORT_NOT_FOUND":
		return "Use 'reportgrid report list' to see available reports"
	case "VERSION_CONFLICT":
		return "The layout was changed concurrently; run the command again"
	case "ROW_FULL":
		return "Shrink a container in that row or insert a new row instead"
	}
	return ""
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	fmt.Fprintf(f.out(), "%+v\n", data)
	return nil
}
