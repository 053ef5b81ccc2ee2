package checks

import "github.com/ioccc-tools/mkiocccentry-core/pkgs/schema"

// AuthorSchema holds the common members plus the author-count/authors
// pair author.json carries (§4.H "Author schema"). Author entries are
// validated directly by AuthorArrayCheck rather than a nested table,
// since the cross-sibling count constraint and the uniqueness checks
// span the whole array at once.
var AuthorSchema = append(append(schema.Schema{}, CommonSchema...), schema.Schema{
	{Name: "IOCCC_author_version", JSONType: schema.TypeString, MaxCount: 1, Required: true, Check: VersionCheck(AuthorVersion)},
	{Name: "author_count", JSONType: schema.TypeInteger, MaxCount: 1, Required: true},
	{Name: "authors", JSONType: schema.TypeArray, MaxCount: 1, Required: true, Check: AuthorArrayCheck},
}...)
