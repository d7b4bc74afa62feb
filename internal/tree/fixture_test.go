package tree_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// createFixture creates each relative path under root. Paths ending in "/" become directories.
func createFixture(testingInstance *testing.T, root string, relativePaths ...string) {
	testingInstance.Helper()
	for _, relativePath := range relativePaths {
		fullPath := filepath.Join(root, filepath.FromSlash(relativePath))
		if strings.HasSuffix(relativePath, "/") {
			if err := os.MkdirAll(fullPath, 0o755); err != nil {
				testingInstance.Fatalf("mkdir %s: %v", fullPath, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
			testingInstance.Fatalf("mkdir parent of %s: %v", fullPath, err)
		}
		if err := os.WriteFile(fullPath, []byte(relativePath), 0o644); err != nil {
			testingInstance.Fatalf("write %s: %v", fullPath, err)
		}
	}
}

// newFixtureRoot returns the path of a fresh directory named "root".
func newFixtureRoot(testingInstance *testing.T, relativePaths ...string) string {
	testingInstance.Helper()
	root := filepath.Join(testingInstance.TempDir(), "root")
	if err := os.Mkdir(root, 0o755); err != nil {
		testingInstance.Fatalf("mkdir root: %v", err)
	}
	createFixture(testingInstance, root, relativePaths...)
	return root
}

func joinLines(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}
