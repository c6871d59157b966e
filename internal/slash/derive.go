package slash

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// deriveInfo computes a command's name and namespace from its location
// under the scan root: the final path segment (extension stripped) is
// the name, and any intermediate directories join with ":" to form the
// namespace.
func deriveInfo(filePath, root string) (name string, namespace *string, err error) {
	rel, err := filepath.Rel(root, filePath)
	if err != nil {
		return "", nil, fmt.Errorf("relativize %s against %s: %w", filePath, root, err)
	}

	rel = filepath.ToSlash(rel)
	if rel == "." {
		return "", nil, errors.New("Invalid command path")
	}
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", nil, fmt.Errorf("%s is outside command root %s", filePath, root)
	}

	rel = strings.TrimSuffix(rel, path.Ext(rel))

	segments := strings.Split(rel, "/")
	if len(segments) == 1 {
		return segments[0], nil, nil
	}

	name = segments[len(segments)-1]
	ns := strings.Join(segments[:len(segments)-1], ":")
	return name, &ns, nil
}

// invocation builds the string a user types to run the command.
func invocation(name string, namespace *string) string {
	if namespace != nil {
		return "/" + *namespace + ":" + name
	}
	return "/" + name
}

// CommandID builds the stable identifier for a file-backed command:
// the scope, a hyphen, then the file path with every separator replaced
// by a hyphen. Identical paths always produce identical ids.
func CommandID(scope Scope, filePath string) string {
	return string(scope) + "-" + strings.ReplaceAll(filepath.ToSlash(filePath), "/", "-")
}
