package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quallab/rustqual/pkg/analyzer"
)

func TestEmptyLinesName(t *testing.T) {
	assert.Equal(t, "empty_lines", NewEmptyLinesAnalyzer().Name())
}

func TestEmptyLinesDetectInFunction(t *testing.T) {
	issues := analyze(t, NewEmptyLinesAnalyzer(), `fn main() {
    let x = 1;

    let y = 2;
}
`)
	require.Len(t, issues, 1)
	assert.Equal(t, 3, issues[0].Line)
	assert.Equal(t, analyzer.FixSimple, issues[0].Fix.Kind)
	assert.Empty(t, issues[0].Fix.Replacement)
}

func TestEmptyLinesIgnoreCleanFunction(t *testing.T) {
	issues := analyze(t, NewEmptyLinesAnalyzer(), `fn main() {
    let x = 1;
    let y = 2;
}
`)
	assert.Empty(t, issues)
}

func TestEmptyLinesIgnoreAfterOpeningBrace(t *testing.T) {
	issues := analyze(t, NewEmptyLinesAnalyzer(), `fn main() {

    let x = 1;
}
`)
	assert.Empty(t, issues)
}

func TestEmptyLinesIgnoreBeforeClosingBrace(t *testing.T) {
	issues := analyze(t, NewEmptyLinesAnalyzer(), `fn main() {
    let x = 1;

}
`)
	assert.Empty(t, issues)
}

func TestEmptyLinesDetectMultiple(t *testing.T) {
	issues := analyze(t, NewEmptyLinesAnalyzer(), `fn process() {
    let x = read();

    let y = transform(x);

    write(y);
}
`)
	assert.Len(t, issues, 2)
}

func TestEmptyLinesSingleLineFunction(t *testing.T) {
	issues := analyze(t, NewEmptyLinesAnalyzer(), "fn main() { let x = 1; }\n")
	assert.Empty(t, issues)
}

func TestEmptyLinesEmptyFunction(t *testing.T) {
	issues := analyze(t, NewEmptyLinesAnalyzer(), "fn main() {}\n")
	assert.Empty(t, issues)
}

func TestEmptyLinesDetectInMethod(t *testing.T) {
	issues := analyze(t, NewEmptyLinesAnalyzer(), `struct Foo;

impl Foo {
    fn method(&self) {
        let x = 1;

        let y = 2;
    }
}
`)
	require.Len(t, issues, 1)
	assert.Equal(t, 6, issues[0].Line)
}

func TestEmptyLinesNestedBlocks(t *testing.T) {
	issues := analyze(t, NewEmptyLinesAnalyzer(), `fn main() {
    if true {
        let x = 1;

        let y = 2;
    }
}
`)
	assert.Len(t, issues, 1)
}

func TestEmptyLinesIgnoreBetweenMethods(t *testing.T) {
	issues := analyze(t, NewEmptyLinesAnalyzer(), `struct Foo;

impl Foo {
    fn first(&self) {
        let x = 1;
    }

    fn second(&self) {
        let y = 2;
    }
}
`)
	assert.Empty(t, issues)
}

func TestEmptyLinesFixRemovesLine(t *testing.T) {
	a := NewEmptyLinesAnalyzer()
	file := parseSource(t, `fn main() {
    let x = 1;

    let y = 2;
}
`)
	issues, err := a.Analyze(context.Background(), file)
	require.NoError(t, err)
	require.Len(t, issues, 1)

	fixed, err := a.Fix(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, 1, fixed)
	assert.Equal(t, "fn main() {\n    let x = 1;\n    let y = 2;\n}\n", file.Unparse())
}
