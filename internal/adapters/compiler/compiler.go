// Package compiler provides the reference compiler used by the srccache engine.
//
// It does not generate code. It validates that brackets balance, counts
// lines, digests the source and allocates a template on the heap, which is
// enough to give every compilation a distinct, relocatable result.
package compiler

import (
	"context"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/srccache/internal/core/domain"
	"go.trai.ch/srccache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Compiler = (*Compiler)(nil)

// Compiler implements ports.Compiler.
type Compiler struct {
	alloc ports.Allocator
}

// New creates a Compiler that places templates with alloc.
func New(alloc ports.Allocator) *Compiler {
	return &Compiler{alloc: alloc}
}

// Compile compiles the source held by key.
func (c *Compiler) Compile(ctx context.Context, key domain.SourceKey) (*domain.FunctionTemplate, error) {
	if err := ctx.Err(); err != nil {
		return nil, zerr.Wrap(err, "compilation cancelled")
	}

	source := key.Source()
	if err := checkBrackets(source, key.Origin()); err != nil {
		return nil, err
	}

	tmpl := &domain.FunctionTemplate{
		Key:    key,
		Digest: xxhash.Sum64String(source),
		Lines:  strings.Count(source, "\n") + 1,
	}
	return c.alloc.Allocate(tmpl), nil
}

var closers = map[rune]rune{')': '(', ']': '[', '}': '{'}

// checkBrackets reports the first unbalanced bracket. String literals and
// comments are skipped.
func checkBrackets(source string, origin domain.Origin) error {
	var stack []rune
	line := 1
	var quote rune
	escaped := false
	lineComment := false
	blockComment := false

	runes := []rune(source)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\n' {
			line++
			lineComment = false
		}

		switch {
		case lineComment:
			continue
		case blockComment:
			if r == '*' && i+1 < len(runes) && runes[i+1] == '/' {
				blockComment = false
				i++
			}
			continue
		case quote != 0:
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == quote:
				quote = 0
			}
			continue
		}

		switch r {
		case '"', '\'', '`':
			quote = r
		case '/':
			if i+1 < len(runes) && runes[i+1] == '/' {
				lineComment = true
				i++
			} else if i+1 < len(runes) && runes[i+1] == '*' {
				blockComment = true
				i++
			}
		case '(', '[', '{':
			stack = append(stack, r)
		case ')', ']', '}':
			if len(stack) == 0 || stack[len(stack)-1] != closers[r] {
				return syntaxError("unexpected "+string(r), line, origin)
			}
			stack = stack[:len(stack)-1]
		}
	}

	if quote != 0 {
		return syntaxError("unterminated string literal", line, origin)
	}
	if len(stack) > 0 {
		return syntaxError("unexpected end of input", line, origin)
	}
	return nil
}

func syntaxError(msg string, line int, origin domain.Origin) error {
	err := zerr.With(zerr.Wrap(domain.ErrSyntax, msg), "line", line+origin.LineOffset)
	if origin.HasName() {
		err = zerr.With(err, "script", origin.Name.String())
	}
	return err
}
