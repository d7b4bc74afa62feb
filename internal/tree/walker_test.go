package tree_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/temirov/dirtree/internal/tree"
	"github.com/temirov/dirtree/internal/types"
)

func renderFixture(testingInstance *testing.T, root string, exclusions []string) string {
	testingInstance.Helper()
	var buffer bytes.Buffer
	walker := tree.NewWalker(&buffer, tree.NewEntryLister(types.NewExclusionSet(exclusions)))
	if renderError := walker.Render(root); renderError != nil {
		testingInstance.Fatalf("Render error: %v", renderError)
	}
	return buffer.String()
}

func TestWalkerRender(testingInstance *testing.T) {
	testCases := []struct {
		name       string
		fixture    []string
		exclusions []string
		expected   string
	}{
		{
			name:     "empty root",
			fixture:  nil,
			expected: joinLines("root/"),
		},
		{
			name:     "single child uses last connector",
			fixture:  []string{"only"},
			expected: joinLines("root/", "└── only"),
		},
		{
			name:    "several children",
			fixture: []string{"c", "a", "b"},
			expected: joinLines(
				"root/",
				"├── a",
				"├── b",
				"└── c",
			),
		},
		{
			name:    "nested directory keeps guide line",
			fixture: []string{"a/x", "b"},
			expected: joinLines(
				"root/",
				"├── a/",
				"│   └── x",
				"└── b",
			),
		},
		{
			name:    "last directory drops guide line",
			fixture: []string{"a", "b/x", "b/y/z"},
			expected: joinLines(
				"root/",
				"├── a",
				"└── b/",
				"    ├── x",
				"    └── y/",
				"        └── z",
			),
		},
		{
			name:    "shallow sibling after deep subtree",
			fixture: []string{"a/b/c/d/e", "f"},
			expected: joinLines(
				"root/",
				"├── a/",
				"│   └── b/",
				"│       └── c/",
				"│           └── d/",
				"│               └── e",
				"└── f",
			),
		},
		{
			name:    "empty directories get a trailing slash",
			fixture: []string{"empty/", "file"},
			expected: joinLines(
				"root/",
				"├── empty/",
				"└── file",
			),
		},
		{
			name:       "excluded names are hidden",
			fixture:    []string{"node_modules/lib/index.js", "src/main.go", "build"},
			exclusions: []string{"node_modules", "build"},
			expected: joinLines(
				"root/",
				"└── src/",
				"    └── main.go",
			),
		},
	}

	for _, testCase := range testCases {
		testingInstance.Run(testCase.name, func(subTest *testing.T) {
			root := newFixtureRoot(subTest, testCase.fixture...)
			actual := renderFixture(subTest, root, testCase.exclusions)
			if actual != testCase.expected {
				subTest.Fatalf("unexpected output\n--- got ---\n%s--- want ---\n%s", actual, testCase.expected)
			}
		})
	}
}

func TestWalkerRenderIsIdempotent(testingInstance *testing.T) {
	root := newFixtureRoot(testingInstance, "a/b/c", "a/d", "e/", "f", "G")
	first := renderFixture(testingInstance, root, nil)
	second := renderFixture(testingInstance, root, nil)
	if first != second {
		testingInstance.Fatalf("outputs differ\n%s\n%s", first, second)
	}
}

func TestWalkerNeverReadsExcludedDirectories(testingInstance *testing.T) {
	root := newFixtureRoot(testingInstance, "node_modules/deep/file", "src/app.js")

	var readPaths []string
	lister := tree.NewEntryLister(types.NewExclusionSet([]string{"node_modules"}))
	lister.ReadDirectory = func(directoryPath string) ([]os.DirEntry, error) {
		readPaths = append(readPaths, directoryPath)
		return os.ReadDir(directoryPath)
	}

	var buffer bytes.Buffer
	if renderError := tree.NewWalker(&buffer, lister).Render(root); renderError != nil {
		testingInstance.Fatalf("Render error: %v", renderError)
	}

	expectedReads := []string{root, filepath.Join(root, "src")}
	if strings.Join(readPaths, ",") != strings.Join(expectedReads, ",") {
		testingInstance.Fatalf("read paths = %v, want %v", readPaths, expectedReads)
	}
	if strings.Contains(buffer.String(), "node_modules") {
		testingInstance.Fatalf("excluded directory rendered:\n%s", buffer.String())
	}
}

func TestWalkerRenderStopsAtFirstReadFailure(testingInstance *testing.T) {
	root := newFixtureRoot(testingInstance, "a/b/x", "a/c", "z")
	failingPath := filepath.Join(root, "a", "b")
	injectedError := errors.New("permission denied")

	lister := tree.NewEntryLister(types.NewExclusionSet(nil))
	lister.ReadDirectory = func(directoryPath string) ([]os.DirEntry, error) {
		if directoryPath == failingPath {
			return nil, injectedError
		}
		return os.ReadDir(directoryPath)
	}

	var buffer bytes.Buffer
	renderError := tree.NewWalker(&buffer, lister).Render(root)
	if renderError == nil {
		testingInstance.Fatalf("expected error")
	}
	if !errors.Is(renderError, injectedError) {
		testingInstance.Fatalf("expected injected error in chain, got %v", renderError)
	}
	if !strings.Contains(renderError.Error(), failingPath) {
		testingInstance.Fatalf("error does not name the failing directory: %v", renderError)
	}

	expected := joinLines(
		"root/",
		"├── a/",
		"│   ├── b/",
	)
	if buffer.String() != expected {
		testingInstance.Fatalf("unexpected partial output\n--- got ---\n%s--- want ---\n%s", buffer.String(), expected)
	}
}

func TestWalkerRenderFailsForMissingRoot(testingInstance *testing.T) {
	missing := filepath.Join(testingInstance.TempDir(), "missing")
	var buffer bytes.Buffer
	renderError := tree.NewWalker(&buffer, tree.NewEntryLister(types.NewExclusionSet(nil))).Render(missing)
	if !errors.Is(renderError, os.ErrNotExist) {
		testingInstance.Fatalf("expected not-exist error, got %v", renderError)
	}
	if buffer.String() != "missing/\n" {
		testingInstance.Fatalf("root line should precede the failure, got %q", buffer.String())
	}
}

type failingWriter struct {
	remaining int
}

var errWriterClosed = errors.New("writer closed")

func (writer *failingWriter) Write(data []byte) (int, error) {
	if writer.remaining == 0 {
		return 0, errWriterClosed
	}
	writer.remaining--
	return len(data), nil
}

func TestWalkerRenderPropagatesWriteFailure(testingInstance *testing.T) {
	root := newFixtureRoot(testingInstance, "a", "b")
	walker := tree.NewWalker(&failingWriter{remaining: 1}, tree.NewEntryLister(types.NewExclusionSet(nil)))
	if renderError := walker.Render(root); !errors.Is(renderError, errWriterClosed) {
		testingInstance.Fatalf("expected writer error, got %v", renderError)
	}
}

func TestRootDisplayName(testingInstance *testing.T) {
	testCases := []struct {
		rootPath string
		expected string
	}{
		{rootPath: ".", expected: "."},
		{rootPath: "..", expected: ".."},
		{rootPath: "/", expected: "/"},
		{rootPath: "project", expected: "project"},
		{rootPath: "project/", expected: "project"},
		{rootPath: "./project", expected: "project"},
		{rootPath: "/srv/data/project", expected: "project"},
		{rootPath: "project/.", expected: "project"},
		{rootPath: "project/..", expected: "project/.."},
	}

	for _, testCase := range testCases {
		testingInstance.Run(testCase.rootPath, func(subTest *testing.T) {
			if actual := tree.RootDisplayName(testCase.rootPath); actual != testCase.expected {
				subTest.Fatalf("RootDisplayName(%q) = %q, want %q", testCase.rootPath, actual, testCase.expected)
			}
		})
	}
}
