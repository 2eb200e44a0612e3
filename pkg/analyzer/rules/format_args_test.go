package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quallab/rustqual/pkg/analyzer"
)

func TestFormatArgsName(t *testing.T) {
	assert.Equal(t, "format_args", NewFormatArgsAnalyzer().Name())
}

func TestFormatArgsDetectManyPlaceholders(t *testing.T) {
	issues := analyze(t, NewFormatArgsAnalyzer(), `fn main() {
    println!("{} {} {}", a, b, c);
}
`)
	require.Len(t, issues, 1)
	assert.Equal(t, 2, issues[0].Line)
	assert.Equal(t, "Use named format arguments instead of positional", issues[0].Message)
	assert.Equal(t, analyzer.FixNone, issues[0].Fix.Kind)
}

func TestFormatArgsIgnoreFewPlaceholders(t *testing.T) {
	issues := analyze(t, NewFormatArgsAnalyzer(), `fn main() {
    println!("{}: {}", key, value);
}
`)
	assert.Empty(t, issues)
}

func TestFormatArgsIgnoreNamedArguments(t *testing.T) {
	issues := analyze(t, NewFormatArgsAnalyzer(), `fn main() {
    println!("{name} is {age} years old in {city}");
}
`)
	assert.Empty(t, issues)
}

func TestFormatArgsDetectFormatMacro(t *testing.T) {
	issues := analyze(t, NewFormatArgsAnalyzer(), `fn main() {
    let msg = format!("{} {} {} {}", a, b, c, d);
}
`)
	assert.Len(t, issues, 1)
}

func TestFormatArgsIgnoreOtherMacros(t *testing.T) {
	issues := analyze(t, NewFormatArgsAnalyzer(), `fn main() {
    vec!["{}", "{}", "{}"];
}
`)
	assert.Empty(t, issues)
}
