package errors

// Error codes.
const (
	CodeAbsentNode       = "F001"
	CodeLiveChildMissing = "F002"
	CodeUndeclaredField  = "F003"
	CodeMountRootMissing = "F004"
	CodeConfigInvalid    = "F005"
	CodeExportFailed     = "F006"
	CodeInvalidMessage   = "F007"
)

// Sentinels for use with errors.Is. Do not mutate.
var (
	ErrAbsentNode       = &Error{Code: CodeAbsentNode}
	ErrLiveChildMissing = &Error{Code: CodeLiveChildMissing}
	ErrUndeclaredField  = &Error{Code: CodeUndeclaredField}
	ErrMountRootMissing = &Error{Code: CodeMountRootMissing}
	ErrConfigInvalid    = &Error{Code: CodeConfigInvalid}
	ErrExportFailed     = &Error{Code: CodeExportFailed}
	ErrInvalidMessage   = &Error{Code: CodeInvalidMessage}
)

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	CodeAbsentNode: {
		Category:   CategoryPrecondition,
		Message:    "Nodes are undefined",
		Suggestion: "Handle a missing old or new node before comparing; only present nodes can be diffed.",
	},
	CodeLiveChildMissing: {
		Category:   CategoryRuntime,
		Message:    "Live child missing at index",
		Suggestion: "The mounted tree was modified outside the patcher or the previous tree is stale.",
	},
	CodeUndeclaredField: {
		Category:   CategoryState,
		Message:    "State field was not declared",
		Suggestion: "Declare every field in the component's initial State so writes are reactive.",
	},
	CodeMountRootMissing: {
		Category: CategoryRuntime,
		Message:  "Mount root is missing",
	},
	CodeConfigInvalid: {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
	},
	CodeExportFailed: {
		Category: CategoryExport,
		Message:  "Snapshot export failed",
	},
	CodeInvalidMessage: {
		Category: CategoryProtocol,
		Message:  "Invalid protocol message",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
