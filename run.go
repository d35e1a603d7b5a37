package scheme

import "strings"

// Interpreter runs single expressions. It is immutable and safe for
// concurrent use; every call gets its own tokenizer and evaluator.
type Interpreter struct {
	config Config
	parser Parser
}

var DefaultInterpreter = NewInterpreter(DefaultConfig())

func NewInterpreter(c Config) *Interpreter {
	c = c.withDefaults()
	return &Interpreter{
		config: c,
		parser: NewParser(c.MaxReadDepth),
	}
}

func (ip *Interpreter) Config() Config {
	return ip.config
}

// Parse reads one datum from text without evaluating it.
func (ip *Interpreter) Parse(text string) (*Node, error) {
	return ReadOne(ip.parser, strings.NewReader(text))
}

// Eval parses and reduces text, returning the result tree.
func (ip *Interpreter) Eval(text string) (*Node, error) {
	n, err := ip.Parse(text)
	if err != nil {
		return nil, err
	}
	return NewEvaluator(ip.config.MaxEvalDepth).Reduce(n)
}

// Run parses, evaluates and renders text. It either returns the whole
// rendering or an error, never partial output.
func (ip *Interpreter) Run(text string) (string, error) {
	v, err := ip.Eval(text)
	if err != nil {
		return "", err
	}
	return Render(v)
}

// Run evaluates text with DefaultInterpreter.
func Run(text string) (string, error) {
	return DefaultInterpreter.Run(text)
}
