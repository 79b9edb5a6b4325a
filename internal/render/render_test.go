package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flist/internal/domain"
)

func TestNewLine(t *testing.T) {
	assert.Equal(t, "\r\n", newLine("windows"))
	assert.Equal(t, "\n", newLine("linux"))
	assert.Equal(t, "\n", newLine("darwin"))
}

func TestFor(t *testing.T) {
	r, err := For(domain.FormatJSON, domain.Suite{})
	require.NoError(t, err)
	assert.IsType(t, JSONRenderer{}, r)

	r, err = For(domain.FormatText, domain.Suite{})
	require.NoError(t, err)
	assert.IsType(t, TextRenderer{}, r)

	r, err = For(domain.FormatJUnit, domain.Suite{Class: "Suite"})
	require.NoError(t, err)
	assert.Equal(t, JUnitRenderer{Suite: domain.Suite{Class: "Suite"}}, r)

	_, err = For(domain.Format(42), domain.Suite{})
	var cfgErr *domain.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestJSONRenderer(t *testing.T) {
	paths := []string{"a/Foo.java", "b/c/Bar.java", "z/a.txt"}

	out, err := JSONRenderer{}.Render(paths)
	require.NoError(t, err)

	t.Run("pretty printed", func(t *testing.T) {
		expected := "[\n  \"a/Foo.java\",\n  \"b/c/Bar.java\",\n  \"z/a.txt\"\n]"
		assert.Equal(t, expected, string(out))
	})

	t.Run("round trips in order", func(t *testing.T) {
		var decoded []string
		require.NoError(t, json.Unmarshal(out, &decoded))
		assert.Equal(t, paths, decoded)
	})

	t.Run("empty list", func(t *testing.T) {
		out, err := JSONRenderer{}.Render(nil)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(out))
	})
}

func TestTextRenderer(t *testing.T) {
	paths := []string{"/a/Foo.java", "b.txt"}

	out, err := TextRenderer{}.Render(paths)
	require.NoError(t, err)
	assert.Equal(t, "/a/Foo.java"+NewLine+"b.txt"+NewLine, string(out))

	lines := strings.Split(string(out), NewLine)
	assert.Equal(t, "", lines[len(lines)-1])
	assert.Equal(t, paths, lines[:len(lines)-1])

	empty, err := TextRenderer{}.Render(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestClassReference(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "a/FooTest.java", expected: "a.FooTest.class"},
		{input: "/a/FooTest.java", expected: ".a.FooTest.class"},
		{input: "java/util/ListTest.java", expected: "class.util.ListTest.class"},
		{input: "javascript/AppTest.java", expected: "classscript.AppTest.class"},
		{input: "NoExtension", expected: "NoExtension"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassReference(tt.input))
		})
	}
}

func TestJUnitRenderer(t *testing.T) {
	t.Run("default suite", func(t *testing.T) {
		out, err := JUnitRenderer{}.Render([]string{"a/FooTest.java", "b/BarTest.java"})
		require.NoError(t, err)

		expected := strings.Join([]string{
			"package n4.quat.selenium.acceptancetest.suites;",
			"",
			"import org.junit.runner.RunWith;",
			"import org.junit.runners.Suite.SuiteClasses;",
			"",
			"@RunWith(org.junit.runners.Suite.class)",
			"@SuiteClasses( {",
			"\ta.FooTest.class",
			"\t,b.BarTest.class",
			"} )",
			"public class AllTestsSuite { }",
			"",
		}, NewLine)
		assert.Equal(t, expected, string(out))
	})

	t.Run("one entry per path, only the first without a comma", func(t *testing.T) {
		paths := []string{"x/OneTest.java", "y/TwoTest.java", "z/ThreeTest.java"}
		out, err := JUnitRenderer{Suite: domain.Suite{Package: "com.example", Class: "Nightly"}}.Render(paths)
		require.NoError(t, err)

		content := string(out)
		assert.True(t, strings.HasPrefix(content, "package com.example;"))
		assert.Contains(t, content, "public class Nightly { }")

		var entries []string
		for _, l := range strings.Split(content, NewLine) {
			if strings.HasPrefix(l, "\t") {
				entries = append(entries, l)
			}
		}
		require.Len(t, entries, len(paths))
		assert.Equal(t, "\tx.OneTest.class", entries[0])
		for i, e := range entries[1:] {
			assert.Equal(t, "\t,"+ClassReference(paths[i+1]), e)
		}
	})

	t.Run("empty suite", func(t *testing.T) {
		out, err := JUnitRenderer{}.Render(nil)
		require.NoError(t, err)
		assert.Contains(t, string(out), "@SuiteClasses( {"+NewLine+"} )")
	})
}
