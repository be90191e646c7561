package plan

import (
	"regexp"
	"strings"
)

// drivePrefixPattern matches Windows drive-letter prefixes like C: or X:\.
var drivePrefixPattern = regexp.MustCompile(`^[A-Za-z]:`)

// Normalize canonicalizes a single relative path candidate.
//
// It fails with an InvalidPath error when the candidate is an absolute
// path (leading slash or drive-letter prefix) or when any slash- or
// backslash-delimited segment equals "..". Segments equal to "." are
// dropped silently. The remaining segments are rejoined with "/"; the
// result never begins or ends with a separator.
func Normalize(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", newError(InvalidPath, "path is empty", raw)
	}

	if strings.HasPrefix(candidate, "/") {
		return "", newError(InvalidPath, "absolute path is not allowed", raw)
	}
	if drivePrefixPattern.MatchString(candidate) {
		return "", newError(InvalidPath, "drive-letter path is not allowed", raw)
	}

	segments := strings.FieldsFunc(candidate, func(r rune) bool {
		return r == '/' || r == '\\'
	})

	kept := make([]string, 0, len(segments))
	for _, seg := range segments {
		switch seg {
		case "..":
			return "", newError(InvalidPath, "path traversal is not allowed", raw)
		case ".":
			continue
		default:
			kept = append(kept, seg)
		}
	}

	if len(kept) == 0 {
		return "", newError(InvalidPath, "path has no usable segments", raw)
	}

	return strings.Join(kept, "/"), nil
}

// Classify infers the entry kind of a normalized path.
//
// The final segment is treated as a file name when it contains a dot and
// is not a dotfile; everything else is a directory. Callers whose source
// field already forces a kind must not use this.
func Classify(normalized string) Kind {
	base := normalized
	if idx := strings.LastIndex(normalized, "/"); idx != -1 {
		base = normalized[idx+1:]
	}
	if strings.Contains(base, ".") && !strings.HasPrefix(base, ".") {
		return KindFile
	}
	return KindDirectory
}
