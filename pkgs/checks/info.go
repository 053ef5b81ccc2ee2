package checks

import "github.com/ioccc-tools/mkiocccentry-core/pkgs/schema"

// InfoSchema holds the common members plus the title/abstract/size
// metrics/override flags/manifest an info.json document carries
// (§4.H "Info schema").
var InfoSchema = append(append(schema.Schema{}, CommonSchema...), schema.Schema{
	{Name: "IOCCC_info_version", JSONType: schema.TypeString, MaxCount: 1, Required: true, Check: VersionCheck(InfoVersion)},

	{Name: "title", JSONType: schema.TypeString, MaxCount: 1, Required: true, Check: TitleCheck},
	{Name: "abstract", JSONType: schema.TypeString, MaxCount: 1, Required: true, Check: AbstractCheck},

	{Name: "rule_2a_size", JSONType: schema.TypeInteger, MaxCount: 1, Required: true},
	{Name: "rule_2b_size", JSONType: schema.TypeInteger, MaxCount: 1, Required: true},
	{Name: "rule_2a_override", JSONType: schema.TypeBool, MaxCount: 1, Required: true, Check: RuleOverrideCheck},
	{Name: "rule_2a_mismatch", JSONType: schema.TypeBool, MaxCount: 1, Required: true, Check: RuleOverrideCheck},
	{Name: "rule_2b_override", JSONType: schema.TypeBool, MaxCount: 1, Required: true, Check: RuleOverrideCheck},
	{Name: "highbit_warning", JSONType: schema.TypeBool, MaxCount: 1, Required: true, Check: RuleOverrideCheck},
	{Name: "nul_warning", JSONType: schema.TypeBool, MaxCount: 1, Required: true, Check: RuleOverrideCheck},
	{Name: "trigraph_warning", JSONType: schema.TypeBool, MaxCount: 1, Required: true, Check: RuleOverrideCheck},
	{Name: "wordbuf_warning", JSONType: schema.TypeBool, MaxCount: 1, Required: true, Check: RuleOverrideCheck},
	{Name: "ungetc_warning", JSONType: schema.TypeBool, MaxCount: 1, Required: true, Check: RuleOverrideCheck},

	{Name: "manifest", JSONType: schema.TypeArray, MaxCount: 1, Required: true, Check: ManifestArrayCheck},
}...)
