// Package checks implements component I: one predicate per schema
// field. Each predicate is pure over its node and (where the spec
// calls for a cross-sibling check) the enclosing object's other
// members; none of them mutate the tree or abort the walk — they
// append to ctx.Errors and return.
package checks

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/ioccc-tools/mkiocccentry-core/pkgs/jsontree"
	"github.com/ioccc-tools/mkiocccentry-core/pkgs/schema"
)

// Diagnostic codes. 0..199 are reserved for internal messages (§3,
// §7) and never appear here; user-facing codes start at 200.
const (
	CodeVersionMismatch  = 210
	CodeContestID        = 220
	CodeAbstractLength   = 230
	CodeTitleFormat      = 231
	CodeTimestampFormat  = 240
	CodeAuthorCount      = 250
	CodeAuthorDuplicate  = 251
	CodeAuthorNumber     = 252
	CodeManifestKey      = 260
	CodeManifestDup      = 261
	CodeManifestFilename = 262
)

// NoCommentValue is the distinguished constant §6 requires every
// Object to carry under "no_comment".
const NoCommentValue = "mkiocccentry - the IOCCC entry tool"

// Tool-version constants this toolkit is pinned to. Contestant JSON
// must echo these exactly (§4.I "Version string").
const (
	ChkentryVersion  = "1.0 2024-01-01"
	FnamchkVersion   = "1.0 2024-01-01"
	JparseVersion    = "1.0 2024-01-01"
	JvalVersion      = "1.0 2024-01-01"
	JnumChkVersion   = "1.0 2024-01-01"
	IocccsizeVersion = "1.0 2024-01-01"

	InfoVersion   = "1.0 2024-01-01"
	AuthorVersion = "1.0 2024-01-01"
)

// Length and format limits (§4.I, §6).
const (
	MaxAbstractLen = 300
	MaxTitleLen    = 64
	MaxBasenameLen = 99
)

var (
	titlePattern    = regexp.MustCompile(`^[a-z0-9][a-z0-9_+-]*$`)
	basenamePattern = regexp.MustCompile(`^[A-Za-z0-9._+-]+$`)

	// utcTimestampLayout matches strftime's "%a %b %d %H:%M:%S %Y UTC".
	utcTimestampLayout = "Mon Jan 2 15:04:05 2006 UTC"
)

func lexeme(n *jsontree.Node) string {
	if n == nil {
		return ""
	}
	return string(n.String.Decoded)
}

// VersionCheck builds a predicate requiring the field's string value
// to equal expected exactly.
func VersionCheck(expected string) schema.CheckFunc {
	return func(ctx *schema.Context) {
		if !ctx.Node.Converted || lexeme(ctx.Node) != expected {
			ctx.Fail(CodeVersionMismatch, "VersionCheck",
				fmt.Sprintf("expected version %q, got %q", expected, lexeme(ctx.Node)))
		}
	}
}

// ContestIDCheck validates the "IOCCC_contest_id" field: either the
// literal "test" or a version-4 variant-1 UUID in canonical lowercase
// form (§4.I, GLOSSARY "Contest ID").
func ContestIDCheck(ctx *schema.Context) {
	val := lexeme(ctx.Node)
	if val == "test" {
		return
	}

	id, err := uuid.Parse(val)
	if err != nil {
		ctx.Fail(CodeContestID, "ContestIDCheck", "not \"test\" and not a well-formed UUID: "+err.Error())
		return
	}
	if id.String() != val {
		ctx.Fail(CodeContestID, "ContestIDCheck", "UUID is not in canonical lowercase form")
		return
	}
	if id.Version() != 4 {
		ctx.Fail(CodeContestID, "ContestIDCheck", "UUID version nibble is not 4")
		return
	}
	if id.Variant() != uuid.RFC4122 {
		ctx.Fail(CodeContestID, "ContestIDCheck", "UUID variant nibble is not one of 8/9/a/b")
	}
}

// AbstractCheck validates a string bounded by MaxAbstractLen, empty only
// if the schema field allows it (§3 "can_be_empty").
func AbstractCheck(ctx *schema.Context) {
	s := lexeme(ctx.Node)
	if len(s) == 0 {
		if !ctx.FieldDef.CanBeEmpty {
			ctx.Fail(CodeAbstractLength, "AbstractCheck", "abstract must not be empty")
		}
		return
	}
	if len(s) > MaxAbstractLen {
		ctx.Fail(CodeAbstractLength, "AbstractCheck",
			fmt.Sprintf("abstract length %d exceeds %d", len(s), MaxAbstractLen))
	}
}

// TitleCheck validates a length-bounded, pattern-matching title (§4.I
// "Abstract/title"), empty only if the schema field allows it (§3
// "can_be_empty").
func TitleCheck(ctx *schema.Context) {
	s := lexeme(ctx.Node)
	if len(s) == 0 {
		if !ctx.FieldDef.CanBeEmpty {
			ctx.Fail(CodeTitleFormat, "TitleCheck", "title must not be empty")
		}
		return
	}
	if len(s) > MaxTitleLen {
		ctx.Fail(CodeTitleFormat, "TitleCheck",
			fmt.Sprintf("title length %d exceeds %d", len(s), MaxTitleLen))
		return
	}
	if !titlePattern.MatchString(s) {
		ctx.Fail(CodeTitleFormat, "TitleCheck", "title does not match [a-z0-9][a-z0-9_+-]*")
	}
}

// UTCTimestampCheck validates strings like "timestamp_epoch" and
// "formed_UTC" against the asctime-UTC layout (§4.I, §6).
func UTCTimestampCheck(ctx *schema.Context) {
	s := lexeme(ctx.Node)
	if _, err := time.Parse(utcTimestampLayout, s); err != nil {
		ctx.Fail(CodeTimestampFormat, "UTCTimestampCheck", "does not match %a %b %d %H:%M:%S %Y UTC: "+err.Error())
	}
}

// RuleOverrideCheck accepts any JSON-typed value; the walker's generic
// type assertion already enforces that this field is a bool, so the
// predicate itself has nothing left to check (§4.I "Rule-override
// booleans"). Interpreting the override is the driver's job, not the
// CORE's.
func RuleOverrideCheck(ctx *schema.Context) {}
