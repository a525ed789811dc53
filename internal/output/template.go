package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/valyala/fasttemplate"

	"github.com/Swatto86/checksum-check/internal/batch"
	"github.com/Swatto86/checksum-check/internal/digest"
)

// Template placeholders are single-brace tags: {path}, {size}, {modified},
// {created}, {md5}, {sha1}, {sha256}, {sha512}.
const (
	tagStart = "{"
	tagEnd   = "}"
)

// ValidateTemplate checks that every placeholder in tpl is known. It runs
// before any file is touched so a typo fails the whole run up front.
func ValidateTemplate(tpl string) error {
	if _, err := fasttemplate.ExecuteFuncStringWithErr(tpl, tagStart, tagEnd, tagFunc("", &digest.Result{})); err != nil {
		return fmt.Errorf("invalid template: %w", err)
	}
	return nil
}

// renderTemplate writes one rendered line per successfully hashed file.
func renderTemplate(w io.Writer, tpl string, outcomes []batch.Outcome) error {
	for _, o := range outcomes {
		if o.Err != nil {
			continue
		}
		line, err := fasttemplate.ExecuteFuncStringWithErr(tpl, tagStart, tagEnd, tagFunc(o.Path, o.Result))
		if err != nil {
			return fmt.Errorf("render template: %w", err)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write template line: %w", err)
		}
	}
	return nil
}

// tagFunc substitutes one placeholder with the matching result field.
func tagFunc(path string, res *digest.Result) fasttemplate.TagFunc {
	return func(w io.Writer, tag string) (int, error) {
		var val string
		switch tag {
		case "path":
			val = path
		case "size":
			val = strconv.FormatInt(res.FileSize, 10)
		case "modified":
			val = strconv.FormatInt(res.Modified, 10)
		case "created":
			val = strconv.FormatInt(res.Created, 10)
		case "md5":
			val = res.MD5
		case "sha1":
			val = res.SHA1
		case "sha256":
			val = res.SHA256
		case "sha512":
			val = res.SHA512
		default:
			return 0, fmt.Errorf("unknown placeholder {%s}", tag)
		}
		return io.WriteString(w, val)
	}
}
