package checks

import (
	"fmt"

	"github.com/ioccc-tools/mkiocccentry-core/pkgs/jsontree"
	"github.com/ioccc-tools/mkiocccentry-core/pkgs/schema"
)

// authorMember returns the value of member name within an author
// object node, or nil.
func authorMember(obj *jsontree.Node, name string) *jsontree.Node {
	if obj == nil {
		return nil
	}
	for _, m := range obj.Members {
		if stripQuotes(m.MemberName.Lexeme) == name {
			return m.MemberValue
		}
	}
	return nil
}

func stripQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// AuthorArrayCheck implements §4.I "Author array": the sibling
// author_count must equal the array's length, every element must be
// an object carrying name/author_number/email/country (email may be
// null for an author who opts out of sharing one), author names must
// be unique, and author numbers must be exactly the permutation of
// [0, count).
func AuthorArrayCheck(ctx *schema.Context) {
	count := ctx.Sibling("author_count")
	if count == nil || !schema.TypeInteger.Matches(count) || !count.Number.Int64.Fits {
		ctx.Fail(CodeAuthorCount, "AuthorArrayCheck", "author_count sibling is missing or not an integer")
		return
	}
	wantCount := count.Number.Int64.Value

	items := ctx.Node.Items
	if int64(len(items)) != wantCount {
		ctx.Fail(CodeAuthorCount, "AuthorArrayCheck",
			fmt.Sprintf("author count != array length: author_count=%d, len(authors)=%d", wantCount, len(items)))
	}

	seenNames := make(map[string]bool, len(items))
	seenNumbers := make(map[int64]bool, len(items))
	for i, author := range items {
		if author.Kind != jsontree.KindObject {
			ctx.Fail(CodeAuthorCount, "AuthorArrayCheck", fmt.Sprintf("authors[%d] is not an object", i))
			continue
		}

		nameNode := authorMember(author, "name")
		if nameNode == nil || !nameNode.Converted {
			ctx.Fail(CodeAuthorCount, "AuthorArrayCheck", fmt.Sprintf("authors[%d] missing name", i))
		} else {
			name := string(nameNode.String.Decoded)
			if seenNames[name] {
				ctx.Fail(CodeAuthorDuplicate, "AuthorArrayCheck", "duplicate author name: "+name)
			}
			seenNames[name] = true
		}

		numNode := authorMember(author, "author_number")
		if numNode == nil || !numNode.Converted || numNode.Number.IsFloating {
			ctx.Fail(CodeAuthorNumber, "AuthorArrayCheck", fmt.Sprintf("authors[%d] missing author_number", i))
			continue
		}
		n := numNode.Number.Int64.Value
		if n < 0 || n >= wantCount {
			ctx.Fail(CodeAuthorNumber, "AuthorArrayCheck",
				fmt.Sprintf("author_number %d out of range [0, %d)", n, wantCount))
		}
		if seenNumbers[n] {
			ctx.Fail(CodeAuthorNumber, "AuthorArrayCheck", fmt.Sprintf("duplicate author_number %d", n))
		}
		seenNumbers[n] = true

		emailNode := authorMember(author, "email")
		switch {
		case emailNode == nil:
			ctx.Fail(CodeAuthorCount, "AuthorArrayCheck", fmt.Sprintf("authors[%d] missing email", i))
		case !schema.TypeMemberOfStringOrNull.Matches(emailNode):
			ctx.Fail(CodeAuthorCount, "AuthorArrayCheck", fmt.Sprintf("authors[%d] email must be a string or null", i))
		}
		if authorMember(author, "country") == nil {
			ctx.Fail(CodeAuthorCount, "AuthorArrayCheck", fmt.Sprintf("authors[%d] missing country", i))
		}
	}
}
