package slash

import "sort"

// NamespaceCount pairs a namespace with how many commands it holds.
type NamespaceCount struct {
	Namespace string `json:"namespace"`
	Count     int    `json:"count"`
}

// CountNamespaces groups file-backed commands by namespace,
// alphabetically, with un-namespaced commands grouped under "".
// Built-ins are not counted; they live outside the file tree.
func CountNamespaces(commands []Command) []NamespaceCount {
	counts := make(map[string]int)
	for i := range commands {
		if commands[i].Scope == ScopeDefault {
			continue
		}
		ns := ""
		if commands[i].Namespace != nil {
			ns = *commands[i].Namespace
		}
		counts[ns]++
	}

	keys := make([]string, 0, len(counts))
	for ns := range counts {
		keys = append(keys, ns)
	}
	sort.Strings(keys)

	out := make([]NamespaceCount, 0, len(keys))
	for _, ns := range keys {
		out = append(out, NamespaceCount{Namespace: ns, Count: counts[ns]})
	}
	return out
}
