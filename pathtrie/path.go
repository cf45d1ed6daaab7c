package pathtrie

import "strings"

// trim strips one leading delimiter off the path.
func trim(path, delim string) string {
	if delim == "" {
		return path
	}
	return strings.TrimPrefix(path, delim)
}

// cut splits a trimmed path at the first delimiter. An empty delimiter never
// splits, which keeps the recursion finite.
func cut(path, delim string) (head, tail string) {
	if delim == "" {
		return path, ""
	}
	head, tail, _ = strings.Cut(path, delim)
	return head, tail
}

// join appends a segment to a path built by Walk.
func join(path, seg, delim string) string {
	if path == "" {
		return seg
	}
	return path + delim + seg
}
