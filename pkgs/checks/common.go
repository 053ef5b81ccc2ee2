package checks

import "github.com/ioccc-tools/mkiocccentry-core/pkgs/schema"

// CommonSchema holds the members required in every submission JSON
// file kind: the no_comment banner, the contest identifier, the
// pinned tool-version strings, and the timestamp quartet (§4.H, §6).
var CommonSchema = schema.Schema{
	{Name: "no_comment", JSONType: schema.TypeString, MaxCount: 1, Required: true, Check: VersionCheck(NoCommentValue)},
	{Name: "IOCCC_contest_id", JSONType: schema.TypeString, MaxCount: 1, Required: true, Check: ContestIDCheck},

	{Name: "chkentry_version", JSONType: schema.TypeString, MaxCount: 1, Required: true, Check: VersionCheck(ChkentryVersion)},
	{Name: "fnamchk_version", JSONType: schema.TypeString, MaxCount: 1, Required: true, Check: VersionCheck(FnamchkVersion)},
	{Name: "jparse_version", JSONType: schema.TypeString, MaxCount: 1, Required: true, Check: VersionCheck(JparseVersion)},
	{Name: "jval_version", JSONType: schema.TypeString, MaxCount: 1, Required: true, Check: VersionCheck(JvalVersion)},
	{Name: "jnum_chk_version", JSONType: schema.TypeString, MaxCount: 1, Required: true, Check: VersionCheck(JnumChkVersion)},
	{Name: "iocccsize_version", JSONType: schema.TypeString, MaxCount: 1, Required: true, Check: VersionCheck(IocccsizeVersion)},

	{Name: "formed_timestamp", JSONType: schema.TypeInteger, MaxCount: 1, Required: true},
	{Name: "formed_timestamp_usec", JSONType: schema.TypeInteger, MaxCount: 1, Required: true},
	{Name: "timestamp_epoch", JSONType: schema.TypeString, MaxCount: 1, Required: true, Check: UTCTimestampCheck},
	{Name: "min_timestamp", JSONType: schema.TypeInteger, MaxCount: 1, Required: true},
	{Name: "formed_UTC", JSONType: schema.TypeString, MaxCount: 1, Required: true, Check: UTCTimestampCheck},
}
