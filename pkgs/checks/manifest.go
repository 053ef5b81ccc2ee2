package checks

import (
	"fmt"

	"github.com/ioccc-tools/mkiocccentry-core/pkgs/jsontree"
	"github.com/ioccc-tools/mkiocccentry-core/pkgs/schema"
)

// manifestSingletonKeys is the fixed set of keys §4.I requires to
// occur exactly once per manifest. extra_file is handled separately
// since it may repeat.
var manifestSingletonKeys = []string{"info_JSON", "author_JSON", "c_src", "Makefile", "remarks"}

const manifestRepeatableKey = "extra_file"

func isManifestKey(k string) bool {
	if k == manifestRepeatableKey {
		return true
	}
	for _, want := range manifestSingletonKeys {
		if k == want {
			return true
		}
	}
	return false
}

// basenamePolicy reports whether name satisfies the filename policy
// of §6: POSIX-portable characters plus '+', first character is not
// '.', '-', or '+', and bounded length.
func basenamePolicy(name string) bool {
	if len(name) == 0 || len(name) > MaxBasenameLen {
		return false
	}
	if !basenamePattern.MatchString(name) {
		return false
	}
	switch name[0] {
	case '.', '-', '+':
		return false
	}
	return true
}

// ManifestArrayCheck implements §4.I "Manifest array": every element
// is an object with exactly one member whose name is in the fixed
// key set; the five singleton keys occur exactly once each, extra_file
// may repeat, and every filename value must satisfy the base-name
// policy.
func ManifestArrayCheck(ctx *schema.Context) {
	singletonSeen := make(map[string]int, len(manifestSingletonKeys))

	for i, entry := range ctx.Node.Items {
		if entry.Kind != jsontree.KindObject {
			ctx.Fail(CodeManifestKey, "ManifestArrayCheck", fmt.Sprintf("manifest[%d] is not an object", i))
			continue
		}
		if len(entry.Members) != 1 {
			ctx.Fail(CodeManifestKey, "ManifestArrayCheck",
				fmt.Sprintf("manifest[%d] must have exactly one member, has %d", i, len(entry.Members)))
			continue
		}

		m := entry.Members[0]
		key := stripQuotes(m.MemberName.Lexeme)
		if !isManifestKey(key) {
			ctx.Fail(CodeManifestKey, "ManifestArrayCheck", "unrecognized manifest key: "+key)
			continue
		}
		if key != manifestRepeatableKey {
			singletonSeen[key]++
		}

		if m.MemberValue == nil || !m.MemberValue.Converted || m.MemberValue.Kind != jsontree.KindString {
			ctx.Fail(CodeManifestFilename, "ManifestArrayCheck", fmt.Sprintf("manifest[%d].%s is not a string", i, key))
			continue
		}
		filename := string(m.MemberValue.String.Decoded)
		if !basenamePolicy(filename) {
			ctx.Fail(CodeManifestFilename, "ManifestArrayCheck", "filename fails base-name policy: "+filename)
		}
	}

	for _, key := range manifestSingletonKeys {
		switch singletonSeen[key] {
		case 0:
			ctx.Fail(CodeManifestDup, "ManifestArrayCheck", "manifest missing required entry: "+key)
		case 1:
			// ok
		default:
			ctx.Fail(CodeManifestDup, "ManifestArrayCheck", fmt.Sprintf("manifest key %q appears %d times, want 1", key, singletonSeen[key]))
		}
	}
}
