package domain

import (
	"strings"

	"github.com/Anti-Raid/luau-lsp/internal/model"
	"github.com/Anti-Raid/luau-lsp/pkg"
)

// dataModelPrefix marks paths rooted at the `game` container.
const dataModelPrefix = "game/"

// GetParentPath returns the part of path before its last `/` or `\`.
//
// The boolean is false for "", "." and "/", which have no parent. A path whose
// only separator is the leading one has "/" as parent, and a bare name has the
// empty string as parent.
func GetParentPath(path string) (string, bool) {
	if path == "" || path == "." || path == "/" {
		return "", false
	}

	slash := strings.LastIndexAny(path, `\/`)
	switch {
	case slash == 0:
		return "/", true
	case slash > 0:
		return path[:slash], true
	}

	return "", true
}

// IsDataModel reports whether path lives under the `game` container.
func IsDataModel(path string) bool {
	return pkg.StartsWith(path, dataModelPrefix)
}

// GetAncestorPath returns the path of the closest ancestor of path named
// ancestorName, e.g. for game/ReplicatedStorage/Module/Child/Foo and Module it
// returns game/ReplicatedStorage/Module. The last component of path is never
// considered, so a child sharing its ancestor's name is skipped.
//
// When no segment matches, root (which may be nil) is consulted: if its name is
// ancestorName and path is not under `game`, the result is the project root.
func GetAncestorPath(path, ancestorName string, root *model.SourceNode) model.AncestorResult {
	parentPath, ok := GetParentPath(path)
	if !ok {
		return model.AncestorResult{Kind: model.AncestorNotFound}
	}

	parentPathWithSlash := parentPath + "/"

	// Only the last occurrence is checked. It must start a segment.
	ancestor := strings.LastIndex(parentPathWithSlash, ancestorName+"/")
	if ancestor >= 0 && (ancestor == 0 || parentPathWithSlash[ancestor-1] == '/') {
		return model.AncestorResult{
			Kind: model.AncestorFound,
			Path: parentPathWithSlash[:ancestor+len(ancestorName)],
		}
	}

	if root != nil && !IsDataModel(parentPathWithSlash) && ancestorName == root.Name {
		return model.AncestorResult{Kind: model.AncestorProjectRoot}
	}

	return model.AncestorResult{Kind: model.AncestorNotFound}
}

// ConvertToScriptPath renders a relative filesystem path as a Luau expression
// rooted at `script`, e.g. ./a/b c/.. becomes script.a["b c"].Parent.
func ConvertToScriptPath(path string) string {
	var b strings.Builder

	for i, segment := range pathElements(path) {
		first := i == 0

		switch {
		case strings.Contains(segment, " "):
			b.WriteString(`["` + segment + `"]`)
		case segment == ".":
			if first {
				b.WriteString("script")
			}
		case segment == "..":
			if first {
				b.WriteString("script.Parent")
			} else {
				b.WriteString(".Parent")
			}
		default:
			if !first {
				b.WriteByte('.')
			}

			b.WriteString(segment)
		}
	}

	return b.String()
}

// pathElements splits path the way a filesystem path iterator does: a leading
// separator becomes a "/" element, repeated separators collapse, and a trailing
// separator yields a final empty element.
func pathElements(path string) []string {
	if path == "" {
		return nil
	}

	var elements []string

	rest := path
	if isSeparator(rest[0]) {
		elements = append(elements, "/")
		rest = strings.TrimLeft(rest, `\/`)
	}

	if rest == "" {
		return elements
	}

	for _, segment := range strings.FieldsFunc(rest, func(r rune) bool { return r == '/' || r == '\\' }) {
		elements = append(elements, segment)
	}

	if isSeparator(rest[len(rest)-1]) {
		elements = append(elements, "")
	}

	return elements
}

func isSeparator(c byte) bool {
	return c == '/' || c == '\\'
}
