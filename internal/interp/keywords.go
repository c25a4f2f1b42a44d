package interp

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Keywords holds every reserved spelling the core must recognize as a
// distinct tag rather than a user identifier (spec.md §6). The host shim
// owns these constants in the original design; here they are a plain
// configuration value so a test suite can pin exact spellings (including
// non-English ones) without touching internal/interp's dispatch logic.
type Keywords struct {
	Class     string `yaml:"class"`
	Inherits  string `yaml:"inherits"`
	Field     string `yaml:"field"`
	Method    string `yaml:"method"`
	Begin     string `yaml:"begin"`
	Set       string `yaml:"set"`
	If        string `yaml:"if"`
	While     string `yaml:"while"`
	Return    string `yaml:"return"`
	Call      string `yaml:"call"`
	New       string `yaml:"new"`
	Let       string `yaml:"let"`
	Print     string `yaml:"print"`
	InputS    string `yaml:"inputs"`
	InputI    string `yaml:"inputi"`
	Me        string `yaml:"me"`
	Super     string `yaml:"super"`
	True      string `yaml:"true"`
	False     string `yaml:"false"`
	Null      string `yaml:"null"`
	Nothing   string `yaml:"nothing"`
	Int       string `yaml:"int"`
	Bool      string `yaml:"bool"`
	String    string `yaml:"string"`
	Void      string `yaml:"void"`
	MainClass string `yaml:"main_class"`
	MainFunc  string `yaml:"main_func"`
}

// DefaultKeywords returns the conventional spellings used throughout
// spec.md's examples.
func DefaultKeywords() *Keywords {
	return &Keywords{
		Class:     "class",
		Inherits:  "inherits",
		Field:     "field",
		Method:    "method",
		Begin:     "begin",
		Set:       "set",
		If:        "if",
		While:     "while",
		Return:    "return",
		Call:      "call",
		New:       "new",
		Let:       "let",
		Print:     "print",
		InputS:    "inputs",
		InputI:    "inputi",
		Me:        "me",
		Super:     "super",
		True:      "true",
		False:     "false",
		Null:      "null",
		Nothing:   "nothing",
		Int:       "int",
		Bool:      "bool",
		String:    "string",
		Void:      "void",
		MainClass: "main",
		MainFunc:  "main",
	}
}

// LoadKeywords reads a YAML override file and merges it onto the default
// spellings; any field the file omits keeps its conventional spelling.
func LoadKeywords(path string) (*Keywords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	kw := DefaultKeywords()
	if err := yaml.Unmarshal(data, kw); err != nil {
		return nil, err
	}
	return kw, nil
}
